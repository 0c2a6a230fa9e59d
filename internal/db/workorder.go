package db

import (
	"context"
	"fmt"
	"time"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoWorkOrderCollection implements WorkOrderCollection for MongoDB.
type MongoWorkOrderCollection struct {
	Collection *mongo.Collection
}

// InsertWorkOrder inserts a work order and returns it with its assigned ID.
// New orders always persist with status pending and no completion time.
func (c *MongoWorkOrderCollection) InsertWorkOrder(ctx context.Context, order models.WorkOrder) (*models.WorkOrder, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	order.Status = models.StatusPending
	order.CompletedAt = nil
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	if _, err := c.Collection.InsertOne(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FindWorkOrders queries work-order records from the collection.
func (c *MongoWorkOrderCollection) FindWorkOrders(ctx context.Context, filter bson.M) ([]models.WorkOrder, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.WorkOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindWorkOrderByID finds a work order by its ID.
func (c *MongoWorkOrderCollection) FindWorkOrderByID(ctx context.Context, id string) (*models.WorkOrder, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid work order ID: %w", err)
	}

	var order models.WorkOrder
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrWorkOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateWorkOrderStatus applies a status transition to a stored work order.
// The transition table is enforced here: an invalid transition returns
// models.ErrInvalidTransition and leaves the stored order untouched. On
// entering completed the completion timestamp is set server-side.
func (c *MongoWorkOrderCollection) UpdateWorkOrderStatus(ctx context.Context, id string, status models.WorkOrderStatus) (*models.WorkOrder, error) {
	order, err := c.FindWorkOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := models.ApplyTransition(order, status, time.Now()); err != nil {
		return nil, err
	}

	update := bson.M{
		"status":     order.Status,
		"updated_at": order.UpdatedAt,
	}
	if order.CompletedAt != nil {
		update["completed_at"] = order.CompletedAt
	}

	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{"$set": update})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrWorkOrderNotFound
	}
	return order, nil
}
