// File: database/repository/review/indexes.go
package reviewRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the review indexes. The unique compound key enforces
// at most one review per reviewer per truck at the store level.
func (r *mongoReviewRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "truckId", Value: 1}, {Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "truckId", Value: 1}, {Key: "updatedAt", Value: -1}},
		},
	})
	return err
}
