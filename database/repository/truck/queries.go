// File: database/repository/truck/queries.go
package truckRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"curbside/models"
)

// GetByVendorID fetches all trucks owned by a vendor.
func (r *mongoTruckRepo) GetByVendorID(ctx context.Context, vendorID string) ([]models.Truck, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"vendorId": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list trucks for vendor %s: %w", vendorID, err)
	}
	defer cursor.Close(ctx)

	var trucks []models.Truck
	if err := cursor.All(ctx, &trucks); err != nil {
		return nil, err
	}
	return trucks, nil
}
