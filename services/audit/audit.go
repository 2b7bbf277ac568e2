// File: services/audit/audit.go
package audit

import (
	"context"
	"time"

	"hopehealth/models"
	"hopehealth/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Record persists one administrative action. Failures are logged and
// swallowed: the trail is best-effort and must never fail the user action
// it describes.
func (s *DefaultAuditService) Record(ctx context.Context, actor, action, entity, entityID, detail string) {
	entry := models.AuditEntry{
		ID:        uuid.New().String(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		utils.GetLogger().Error("failed to record audit entry",
			zap.String("action", action), zap.Error(err))
	}
}

// List returns a page of audit entries, newest first, plus the total count.
func (s *DefaultAuditService) List(ctx context.Context, page, size int) ([]models.AuditEntry, int64, error) {
	return s.Repo.List(ctx, page, size)
}
