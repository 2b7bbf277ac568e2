// File: services/session/session.go
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"hopehealth/clients"
	"hopehealth/utils"

	"go.uber.org/zap"
)

// isValidToken mirrors the validity rule used across the admin portal: a
// token authenticates iff it is non-empty after trimming and is not the
// literal string "undefined" (a historical artifact of serialising a
// missing value into the store).
func isValidToken(token string) bool {
	trimmed := strings.TrimSpace(token)
	return trimmed != "" && trimmed != "undefined"
}

// IsAuthenticated reports whether the persisted access token passes the
// validity rule.
func (s *DefaultSessionService) IsAuthenticated() bool {
	return isValidToken(s.Store.AccessToken())
}

// CurrentIdentity returns the display label of the logged-in admin.
func (s *DefaultSessionService) CurrentIdentity() string {
	return s.Store.LoggedUser()
}

// Login exchanges credentials for a token pair, verifies the administrative
// role, and persists the session. A role failure discards both tokens so a
// valid but unprivileged account never leaves a half-open session behind.
func (s *DefaultSessionService) Login(ctx context.Context, username, password string) (string, error) {
	logger := utils.GetLogger()

	pair, err := s.Identity.PasswordGrant(ctx, username, password)
	if err != nil {
		if errors.Is(err, clients.ErrInvalidGrant) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.Users.VerifyAdminRole(ctx, pair.AccessToken); err != nil {
		logger.Warn("admin role verification failed", zap.String("username", username), zap.Error(err))
		if clearErr := s.Store.Clear(); clearErr != nil {
			logger.Error("failed to discard tokens after role rejection", zap.Error(clearErr))
		}
		return "", ErrForbidden
	}

	if err := s.Store.SaveTokens(*pair); err != nil {
		return "", err
	}

	// Prefer the IdP's preferred_username claim for display; fall back to
	// whatever the admin typed.
	loggedUser := username
	if identity, err := utils.InspectToken(pair.AccessToken); err == nil && identity.Username != "" {
		loggedUser = identity.Username
	}
	if err := s.Store.SaveIdentity(loggedUser); err != nil {
		logger.Error("failed to persist logged user", zap.Error(err))
	}

	s.record(ctx, loggedUser, "session.login", "session", "", "admin logged in")
	logger.Info("admin session established", zap.String("loggedUser", loggedUser))
	return loggedUser, nil
}

// Logout stops the refresh cycle, waits out the notice window, and clears
// the persisted session. The cycle is stopped first so no refresh tick can
// race the token-clearing step.
func (s *DefaultSessionService) Logout(ctx context.Context) error {
	logger := utils.GetLogger()
	loggedUser := s.Store.LoggedUser()

	s.StopRefreshCycle()

	if s.LogoutDelay > 0 {
		time.Sleep(s.LogoutDelay)
	}

	if err := s.Store.Clear(); err != nil {
		return err
	}

	s.record(ctx, loggedUser, "session.logout", "session", "", "admin logged out")
	logger.Info("admin session closed", zap.String("loggedUser", loggedUser))
	return nil
}

// record writes an audit entry when a recorder is wired; audit failures
// never surface to the caller.
func (s *DefaultSessionService) record(ctx context.Context, actor, action, entity, entityID, detail string) {
	if s.Audit == nil {
		return
	}
	s.Audit.Record(ctx, actor, action, entity, entityID, detail)
}
