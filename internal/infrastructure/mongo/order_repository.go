package mongo

import (
	"context"
	"strings"

	"github.com/zhyrafyk/park-services/api/internal/public/application"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository persists booking requests.
type OrderRepository struct {
	orders *mongo.Collection
}

// NewOrderRepository binds the orders collection.
func NewOrderRepository(db *mongo.Database, collectionName string) *OrderRepository {
	return &OrderRepository{orders: db.Collection(collectionName)}
}

// Insert stores one booking and assigns its id.
func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	doc := OrderDocument{
		ID:           primitive.NewObjectID(),
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Date:         order.Date,
		Time:         order.Time,
		Notes:        order.Notes,
		Items:        orderItemsToDocuments(order.Items),
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
	if _, err := r.orders.InsertOne(ctx, doc); err != nil {
		return err
	}
	order.ID = doc.ID.Hex()
	return nil
}

// FindAll returns every booking, newest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]domain.Order, 0)
	for cursor.Next(ctx) {
		var doc OrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		orders = append(orders, mapOrderDocument(doc))
	}
	return orders, cursor.Err()
}

// UpdateStatus moves one booking to a new status tag.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return application.ErrNotFound
	}
	result, err := r.orders.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}
