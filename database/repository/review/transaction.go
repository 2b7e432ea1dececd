// File: database/repository/review/transaction.go
package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"curbside/models"
	"curbside/utils"
)

// UpsertRating runs the read-modify-write cycle as one transaction: read the
// truck aggregate, read the reviewer's prior review if any, recompute, then
// write both documents. The driver retries the whole callback on transient
// write conflicts; exhausted retries surface as ConflictError. A missing
// truck aborts with NotFoundError and nothing written.
func (r *mongoReviewRepo) UpsertRating(ctx context.Context, in models.RatingInput) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var truck models.Truck
		err := r.truckColl.FindOne(sc, bson.M{"id": in.TruckID}).Decode(&truck)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "truck", ID: in.TruckID}
		}
		if err != nil {
			return nil, fmt.Errorf("read truck failed: %w", err)
		}

		var oldRating *int
		var prior models.Review
		err = r.coll.FindOne(sc, bson.M{"truckId": in.TruckID, "userId": in.UserID}).Decode(&prior)
		switch {
		case err == nil:
			oldRating = &prior.Rating
		case errors.Is(err, mongo.ErrNoDocuments):
			// first review from this user
		default:
			return nil, fmt.Errorf("read review failed: %w", err)
		}

		newAvg, newCount := models.RecomputeRating(truck.AverageRating, truck.RatingCount, oldRating, in.Rating)
		now := time.Now().UTC()

		res, err := r.truckColl.UpdateOne(sc,
			bson.M{"id": in.TruckID},
			bson.M{"$set": bson.M{
				"averageRating": newAvg,
				"ratingCount":   newCount,
				"updatedAt":     now,
			}},
		)
		if err != nil {
			return nil, fmt.Errorf("update truck aggregates failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, utils.NotFoundError{Resource: "truck", ID: in.TruckID}
		}

		// Upsert keeps the original createdAt; only updatedAt is refreshed.
		_, err = r.coll.UpdateOne(sc,
			bson.M{"truckId": in.TruckID, "userId": in.UserID},
			bson.M{
				"$set": bson.M{
					"rating":    in.Rating,
					"comment":   in.Comment,
					"userName":  in.UserName,
					"updatedAt": now,
				},
				"$setOnInsert": bson.M{"createdAt": now},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("upsert review failed: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		var nf utils.NotFoundError
		if errors.As(err, &nf) {
			return nf
		}
		if isTransientTxnError(err) {
			return utils.ConflictError{Op: "upsert rating", Err: err}
		}
		return fmt.Errorf("rating transaction failed: %w", err)
	}
	return nil
}

// isTransientTxnError reports whether the driver gave up on a retryable
// conflict (write contention or an unknown commit outcome).
func isTransientTxnError(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.HasErrorLabel("TransientTransactionError") ||
			cmdErr.HasErrorLabel("UnknownTransactionCommitResult")
	}
	return false
}
