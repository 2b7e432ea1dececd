// File: services/rating/interface.go
package rating

import (
	"context"

	reviewRepo "curbside/database/repository/review"
	"curbside/models"
)

// RatingService is the entry point for rating contributions and the review
// read path.
type RatingService interface {
	UpsertRating(ctx context.Context, in models.RatingInput) error
	TopReviews(ctx context.Context, truckID string) ([]models.Review, error)
}

type DefaultRatingService struct {
	Repo reviewRepo.ReviewRepository
}
