// File: database/repository/truck/crud.go
package truckRepo

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

// Create inserts a new truck with zeroed rating aggregates and returns its ID.
func (r *mongoTruckRepo) Create(ctx context.Context, truck *models.Truck) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if truck.ID == "" {
		truck.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	truck.AverageRating = 0
	truck.RatingCount = 0
	truck.CreatedAt = now
	truck.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, truck); err != nil {
		return "", fmt.Errorf("failed to insert truck: %w", err)
	}
	return truck.ID, nil
}

// GetByID returns a truck by its ID.
func (r *mongoTruckRepo) GetByID(ctx context.Context, id string) (*models.Truck, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var truck models.Truck
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&truck)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFoundError{Resource: "truck", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch truck %s: %w", id, err)
	}
	return &truck, nil
}

// UpdateDetails updates vendor-editable descriptive fields only. The filter
// includes the owning vendor so another vendor's truck can never match.
func (r *mongoTruckRepo) UpdateDetails(ctx context.Context, id, vendorID string, upd models.TruckUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Cuisine != nil {
		set["cuisine"] = *upd.Cuisine
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Lat != nil {
		set["lat"] = *upd.Lat
	}
	if upd.Lng != nil {
		set["lng"] = *upd.Lng
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "vendorId": vendorID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update truck %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "truck", ID: id}
	}
	return nil
}
