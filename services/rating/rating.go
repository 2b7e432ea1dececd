// File: services/rating/rating.go
package rating

import (
	"context"

	"curbside/models"
	"curbside/utils"
)

// UpsertRating validates a contribution and hands it to the transactional
// upsert. Validation failures are rejected before any write is attempted;
// NotFound and Conflict surface unchanged from the transaction.
func (s *DefaultRatingService) UpsertRating(ctx context.Context, in models.RatingInput) error {
	if in.TruckID == "" {
		return utils.ValidationError{Reason: "truck id is required"}
	}
	if in.UserID == "" {
		return utils.ValidationError{Reason: "reviewer id is required"}
	}
	if in.Rating < 1 || in.Rating > 5 {
		return utils.ValidationError{Reason: "rating must be between 1 and 5"}
	}
	if in.UserName == "" {
		in.UserName = in.UserID
	}
	return s.Repo.UpsertRating(ctx, in)
}

// TopReviews returns at most the 5 most recently updated reviews, newest
// first, independent of the total review count.
func (s *DefaultRatingService) TopReviews(ctx context.Context, truckID string) ([]models.Review, error) {
	return s.Repo.TopByTruck(ctx, truckID)
}
