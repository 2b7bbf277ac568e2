// File: handlers/session.go
package handlers

import (
	"errors"
	"net/http"

	"hopehealth/models"
	"hopehealth/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginHandler performs the credential exchange and starts the refresh
// cycle on success.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	loggedUser, err := hb.Sessions.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		case errors.Is(err, session.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "account does not hold the admin role"})
		default:
			logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "identity provider unavailable"})
		}
		return
	}

	hb.Sessions.StartRefreshCycle()

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"loggedUser":    loggedUser,
	})
}

// LogoutHandler stops the refresh cycle and clears the session.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	if err := hb.Sessions.Logout(c.Request.Context()); err != nil {
		getLogger(c).Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to close session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// SessionStateHandler reports whether a valid session exists and for whom.
func (hb *HandlerBundle) SessionStateHandler(c *gin.Context) {
	state := models.SessionState{
		Authenticated: hb.Sessions.IsAuthenticated(),
	}
	if state.Authenticated {
		state.LoggedUser = hb.Sessions.CurrentIdentity()
	}
	c.JSON(http.StatusOK, state)
}

// RefreshHandler forces an immediate token rotation outside the cycle.
func (hb *HandlerBundle) RefreshHandler(c *gin.Context) {
	if err := hb.Sessions.RefreshNow(c.Request.Context()); err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session to refresh"})
			return
		}
		getLogger(c).Warn("manual refresh failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "token refresh failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"refreshed": true})
}
