// File: handlers/audit.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListAuditEntriesHandler returns a page of the audit trail, newest first.
func (hb *HandlerBundle) ListAuditEntriesHandler(c *gin.Context) {
	page, size := pageParams(c)
	entries, total, err := hb.Audit.List(c.Request.Context(), page, size)
	if err != nil {
		getLogger(c).Error("audit listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list audit entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entryList":  entries,
		"entryCount": total,
	})
}
