// File: database/repository/truck/interface.go
package truckRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"curbside/database"
	"curbside/models"
)

type TruckRepository interface {
	Create(ctx context.Context, truck *models.Truck) (string, error)
	GetByID(ctx context.Context, id string) (*models.Truck, error)
	GetByVendorID(ctx context.Context, vendorID string) ([]models.Truck, error)
	UpdateDetails(ctx context.Context, id, vendorID string, upd models.TruckUpdate) error
	EnsureIndexes(ctx context.Context) error
}

type mongoTruckRepo struct {
	coll *mongo.Collection
}

// NewMongoTruckRepo constructs a new MongoDB TruckRepository.
func NewMongoTruckRepo() TruckRepository {
	return &mongoTruckRepo{
		coll: database.DB().Collection("trucks"),
	}
}
