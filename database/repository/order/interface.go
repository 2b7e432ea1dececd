// File: database/repository/order/interface.go
package orderRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"curbside/database"
	"curbside/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (string, error)
	GetByID(ctx context.Context, truckID, orderID string) (*models.Order, error)
	// UpdateStatus performs the single-writer status move as a conditional
	// field update filtered on the expected current status.
	UpdateStatus(ctx context.Context, truckID, orderID string, from, to models.OrderStatus) error
	GetByUserID(ctx context.Context, userID string) ([]models.Order, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new MongoDB OrderRepository. Orders live in
// a single collection with an embedded truckId, which serves both the
// per-truck vendor view and the cross-truck customer view.
func NewMongoOrderRepo() OrderRepository {
	return &mongoOrderRepo{
		coll: database.DB().Collection("orders"),
	}
}
