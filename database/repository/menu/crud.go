// File: database/repository/menu/crud.go
package menuRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"curbside/models"
)

// Create inserts a menu item. Items are immutable once created.
func (r *mongoMenuRepo) Create(ctx context.Context, item *models.MenuItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return "", fmt.Errorf("failed to insert menu item: %w", err)
	}
	return item.ID, nil
}

// GetByTruckID returns a truck's full menu.
func (r *mongoMenuRepo) GetByTruckID(ctx context.Context, truckID string) ([]models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"truckId": truckID})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu for truck %s: %w", truckID, err)
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
