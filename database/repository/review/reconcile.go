// File: database/repository/review/reconcile.go
package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"curbside/models"
)

// ReconcileAggregates recomputes each truck's (averageRating, ratingCount)
// from the full review set and rewrites any stored aggregate that drifted.
// The rolling transaction never recomputes from scratch, so an aggregate
// corrupted outside the atomic path cannot self-heal without this pass.
func (r *mongoReviewRepo) ReconcileAggregates(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, reviewAggPipeline())
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate reviews: %w", err)
	}
	defer cursor.Close(ctx)

	fixed := 0
	for cursor.Next(ctx) {
		var row struct {
			TruckID string  `bson:"_id"`
			Count   int     `bson:"count"`
			Avg     float64 `bson:"avg"`
		}
		if err := cursor.Decode(&row); err != nil {
			return fixed, err
		}
		avg := models.RoundRating(row.Avg)

		res, err := r.truckColl.UpdateOne(ctx,
			bson.M{
				"id": row.TruckID,
				"$or": bson.A{
					bson.M{"averageRating": bson.M{"$ne": avg}},
					bson.M{"ratingCount": bson.M{"$ne": row.Count}},
				},
			},
			bson.M{"$set": bson.M{
				"averageRating": avg,
				"ratingCount":   row.Count,
				"updatedAt":     time.Now().UTC(),
			}},
		)
		if err != nil {
			return fixed, fmt.Errorf("failed to repair truck %s: %w", row.TruckID, err)
		}
		fixed += int(res.ModifiedCount)
	}
	return fixed, cursor.Err()
}

func reviewAggPipeline() []bson.M {
	return []bson.M{
		{"$group": bson.M{
			"_id":   "$truckId",
			"count": bson.M{"$sum": 1},
			"avg":   bson.M{"$avg": "$rating"},
		}},
	}
}
