package session

import (
	"context"
	"sync"
	"time"

	"hopehealth/clients"
	"hopehealth/services/audit"
)

// Service owns the admin access/refresh token pair for the lifetime of an
// authenticated session: it performs the credential exchange, keeps the
// access token fresh on a recurring cycle, and makes logout deterministic.
type Service interface {
	IsAuthenticated() bool
	CurrentIdentity() string
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	StartRefreshCycle()
	StopRefreshCycle()
	RefreshNow(ctx context.Context) error
}

// DefaultSessionService implements Service.
type DefaultSessionService struct {
	Identity clients.IdentityAPI
	Users    clients.UserAPI
	Store    TokenStore
	Audit    audit.Recorder

	// RefreshInterval is the fixed period of the refresh cycle.
	RefreshInterval time.Duration
	// LogoutDelay is the pause between stopping the cycle and clearing the
	// store, giving the UI a window to show its logging-out notice.
	LogoutDelay time.Duration

	mu            sync.Mutex
	cancelRefresh context.CancelFunc

	failureMu           sync.Mutex
	consecutiveFailures int
}
