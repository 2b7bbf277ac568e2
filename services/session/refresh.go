// File: services/session/refresh.go
package session

import (
	"context"
	"time"

	"hopehealth/utils"

	"go.uber.org/zap"
)

// maxConsecutiveRefreshFailures bounds how long a dead refresh token can
// linger: after this many failed ticks in a row the session is forced out
// rather than left with a stale access token indefinitely.
const maxConsecutiveRefreshFailures = 3

// StartRefreshCycle begins the recurring token refresh. Calling it while a
// cycle is already running is a no-op, so there is never more than one
// ticker per session service.
func (s *DefaultSessionService) StartRefreshCycle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelRefresh != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelRefresh = cancel
	go s.runRefreshLoop(ctx)

	utils.GetLogger().Info("token refresh cycle started",
		zap.Duration("interval", s.RefreshInterval))
}

// StopRefreshCycle cancels the running cycle. Safe to call when no cycle
// is running.
func (s *DefaultSessionService) StopRefreshCycle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelRefresh == nil {
		return
	}
	s.cancelRefresh()
	s.cancelRefresh = nil

	utils.GetLogger().Info("token refresh cycle stopped")
}

func (s *DefaultSessionService) runRefreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Fire-and-forget: a failed tick is retried on the next one,
			// never immediately.
			if err := s.RefreshNow(ctx); err != nil {
				utils.GetLogger().Warn("token refresh tick failed", zap.Error(err))
			}
		}
	}
}

// RefreshNow exchanges the stored refresh token for a fresh pair and
// persists it. Three consecutive failures force the session out.
func (s *DefaultSessionService) RefreshNow(ctx context.Context) error {
	logger := utils.GetLogger()

	refreshToken := s.Store.RefreshToken()
	if !isValidToken(refreshToken) {
		s.noteRefreshFailure(ctx)
		return ErrNotAuthenticated
	}

	pair, err := s.Identity.RefreshGrant(ctx, refreshToken)
	if err != nil {
		s.noteRefreshFailure(ctx)
		return err
	}

	if err := s.Store.SaveTokens(*pair); err != nil {
		s.noteRefreshFailure(ctx)
		return err
	}

	s.failureMu.Lock()
	s.consecutiveFailures = 0
	s.failureMu.Unlock()

	logger.Debug("access token rotated")
	return nil
}

// noteRefreshFailure counts a failed tick and forces logout once the run
// of failures reaches the limit.
func (s *DefaultSessionService) noteRefreshFailure(ctx context.Context) {
	s.failureMu.Lock()
	s.consecutiveFailures++
	failures := s.consecutiveFailures
	s.failureMu.Unlock()

	logger := utils.GetLogger()
	logger.Warn("refresh attempt failed", zap.Int("consecutiveFailures", failures))

	if failures < maxConsecutiveRefreshFailures {
		return
	}

	logger.Error("refresh failed repeatedly, forcing logout",
		zap.Int("consecutiveFailures", failures))

	loggedUser := s.Store.LoggedUser()
	s.StopRefreshCycle()
	if err := s.Store.Clear(); err != nil {
		logger.Error("failed to clear session after repeated refresh failures", zap.Error(err))
	}
	s.record(ctx, loggedUser, "session.expired", "session", "", "session closed after repeated refresh failures")

	s.failureMu.Lock()
	s.consecutiveFailures = 0
	s.failureMu.Unlock()
}
