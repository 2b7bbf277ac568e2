package auditRepo

import (
	"context"

	"hopehealth/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new audit entry.
func (r *mongoAuditRepo) Create(ctx context.Context, entry models.AuditEntry) error {
	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

// List returns a page of audit entries, newest first, plus the total count.
func (r *mongoAuditRepo) List(ctx context.Context, page, size int) ([]models.AuditEntry, int64, error) {
	if size <= 0 {
		size = 25
	}
	if page < 0 {
		page = 0
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(page * size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var entries []models.AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
