package mongo

import (
	"context"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatsRepository appends and reads the page-view event log. Events are
// never updated or deleted.
type StatsRepository struct {
	events *mongo.Collection
}

// NewStatsRepository binds the statistics collection.
func NewStatsRepository(db *mongo.Database, collectionName string) *StatsRepository {
	return &StatsRepository{events: db.Collection(collectionName)}
}

// Insert appends one event.
func (r *StatsRepository) Insert(ctx context.Context, event domain.StatisticsEvent) error {
	doc := StatisticsDocument{
		Path:      event.Path,
		UserAgent: event.UserAgent,
		IP:        event.IP,
		Referrer:  event.Referrer,
		Screen:    event.Screen,
		Timestamp: event.Timestamp,
	}
	_, err := r.events.InsertOne(ctx, doc)
	return err
}

// FindAll returns the full event log in insertion order. The aggregator
// recomputes its rollups from this on every dashboard call.
func (r *StatsRepository) FindAll(ctx context.Context) ([]domain.StatisticsEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.events.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]domain.StatisticsEvent, 0)
	for cursor.Next(ctx) {
		var doc StatisticsDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		events = append(events, domain.StatisticsEvent{
			ID:        doc.ID.Hex(),
			Path:      doc.Path,
			UserAgent: doc.UserAgent,
			IP:        doc.IP,
			Referrer:  doc.Referrer,
			Screen:    doc.Screen,
			Timestamp: doc.Timestamp,
		})
	}
	return events, cursor.Err()
}
