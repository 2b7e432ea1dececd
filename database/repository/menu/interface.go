// File: database/repository/menu/interface.go
package menuRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"curbside/database"
	"curbside/models"
)

type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) (string, error)
	GetByTruckID(ctx context.Context, truckID string) ([]models.MenuItem, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoMenuRepo struct {
	coll *mongo.Collection
}

// NewMongoMenuRepo constructs a new MongoDB MenuRepository.
func NewMongoMenuRepo() MenuRepository {
	return &mongoMenuRepo{
		coll: database.DB().Collection("menu_items"),
	}
}
