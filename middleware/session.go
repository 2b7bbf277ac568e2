// File: middleware/session.go
package middleware

import (
	"net/http"

	"hopehealth/services/session"

	"github.com/gin-gonic/gin"
)

// SessionGuard rejects requests when no valid admin session is held. The
// dashboard is single-operator: the session lives server-side, so there is
// no per-request token to check, only the session service's state.
func SessionGuard(sessions session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.Set("loggedUser", sessions.CurrentIdentity())
		c.Next()
	}
}
