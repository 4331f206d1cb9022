package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FailureRepository records undeliverable notifications for later
// inspection. Recording itself is best-effort; a failed insert is only
// logged so the notification path can never fail a caller.
type FailureRepository struct {
	failures *mongo.Collection
	logger   *log.Logger
}

// NewFailureRepository binds the failed-notifications collection.
func NewFailureRepository(db *mongo.Database, collectionName string, logger *log.Logger) *FailureRepository {
	return &FailureRepository{failures: db.Collection(collectionName), logger: logger}
}

// RecordFailure implements notify.FailureSink.
func (r *FailureRepository) RecordFailure(ctx context.Context, destination, text string, sendErr error) {
	doc := bson.M{
		"destination": destination,
		"text":        text,
		"error":       sendErr.Error(),
		"status":      "pending",
		"createdAt":   time.Now().UTC(),
	}
	if _, err := r.failures.InsertOne(ctx, doc); err != nil && r.logger != nil {
		r.logger.Printf("failed_notifications insert failed: %v", err)
	}
}
