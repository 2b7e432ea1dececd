// File: database/repository/review/interface.go
package reviewRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"curbside/database"
	"curbside/models"
)

// TopReviewsLimit caps the review read path: at most the 5 most recently
// updated reviews per truck, newest first.
const TopReviewsLimit = 5

type ReviewRepository interface {
	// UpsertRating inserts or replaces one reviewer's contribution and
	// recomputes the truck's rolling aggregate, atomically.
	UpsertRating(ctx context.Context, in models.RatingInput) error
	TopByTruck(ctx context.Context, truckID string) ([]models.Review, error)
	// ReconcileAggregates recomputes every truck's aggregate from the full
	// review set and repairs any drift. Returns the number of trucks fixed.
	ReconcileAggregates(ctx context.Context) (int, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoReviewRepo struct {
	coll      *mongo.Collection
	truckColl *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	db := database.DB()
	return &mongoReviewRepo{
		coll:      db.Collection("reviews"),
		truckColl: db.Collection("trucks"),
	}
}
