package models

import (
	"math"
	"time"
)

// Review is keyed by (truckId, userId): at most one review per reviewer per
// truck. A repeat rating from the same reviewer replaces it in place,
// preserving createdAt and refreshing updatedAt.
type Review struct {
	TruckID   string    `bson:"truckId" json:"truckId"`
	UserID    string    `bson:"userId" json:"userId"`
	UserName  string    `bson:"userName" json:"userName"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RatingInput is one reviewer's contribution to a truck's aggregate.
type RatingInput struct {
	TruckID  string
	UserID   string
	UserName string
	Rating   int
	Comment  string
}

// RecomputeRating rolls one contribution into a truck's stored aggregate.
// oldRating is the reviewer's superseded value, nil on a first review.
// The arithmetic is side-effect free so the transaction driver and the
// reconciliation pass can share it and it can be tested without a store.
func RecomputeRating(avg float64, count int, oldRating *int, rating int) (newAvg float64, newCount int) {
	if oldRating == nil {
		newCount = count + 1
		if newCount == 0 {
			return 0, 0
		}
		newAvg = (avg*float64(count) + float64(rating)) / float64(newCount)
	} else {
		newCount = count
		if newCount == 0 {
			newCount = 1
		}
		newAvg = (avg*float64(newCount) - float64(*oldRating) + float64(rating)) / float64(newCount)
	}
	return RoundRating(newAvg), newCount
}

// RoundRating rounds an average to the 2 decimal places stored on the truck.
func RoundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}
