package auditRepo

import (
	"context"

	"hopehealth/database"
	"hopehealth/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AuditRepository interface {
	Create(ctx context.Context, entry models.AuditEntry) error
	List(ctx context.Context, page, size int) ([]models.AuditEntry, int64, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns a new AuditRepository instance using MongoDB.
func NewMongoAuditRepo() AuditRepository {
	db := database.MongoClient.Database("hopehealth")
	return &mongoAuditRepo{
		coll: db.Collection("audit_entries"),
	}
}
