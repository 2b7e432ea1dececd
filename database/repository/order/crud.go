// File: database/repository/order/crud.go
package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"curbside/models"
	"curbside/utils"
)

// Create inserts a new order document. The caller (the lifecycle manager)
// has already validated it and forced status to pending.
func (r *mongoOrderRepo) Create(ctx context.Context, order *models.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}
	return order.ID, nil
}

// GetByID returns one order scoped to its truck.
func (r *mongoOrderRepo) GetByID(ctx context.Context, truckID, orderID string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": orderID, "truckId": truckID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFoundError{Resource: "order", ID: orderID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	return &order, nil
}
