// File: database/repository/review/queries.go
package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"curbside/models"
)

// TopByTruck returns at most TopReviewsLimit reviews for a truck, most
// recently updated first.
func (r *mongoReviewRepo) TopByTruck(ctx context.Context, truckID string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetLimit(TopReviewsLimit)
	cursor, err := r.coll.Find(ctx, bson.M{"truckId": truckID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for truck %s: %w", truckID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
