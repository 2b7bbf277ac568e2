package audit

import (
	"context"

	auditRepo "hopehealth/database/repository/audit"
	"hopehealth/models"
)

// Recorder is the write-side hook other services use to leave a trail.
type Recorder interface {
	Record(ctx context.Context, actor, action, entity, entityID, detail string)
}

// Service exposes the audit trail: best-effort writes plus a paged read.
type Service interface {
	Recorder
	List(ctx context.Context, page, size int) ([]models.AuditEntry, int64, error)
}

// DefaultAuditService implements Service.
type DefaultAuditService struct {
	Repo auditRepo.AuditRepository
}
