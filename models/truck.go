package models

import "time"

// Truck is a published point of sale. Rating aggregates are mutated only by
// the review transaction (and the reconciliation pass); descriptive fields
// only by the owning vendor. Trucks are never deleted.
type Truck struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Cuisine       string    `bson:"cuisine" json:"cuisine"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Lat           float64   `bson:"lat" json:"lat"`
	Lng           float64   `bson:"lng" json:"lng"`
	VendorID      string    `bson:"vendorId" json:"vendorId"`
	AverageRating float64   `bson:"averageRating" json:"averageRating"`
	RatingCount   int       `bson:"ratingCount" json:"ratingCount"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TruckUpdate carries the vendor-editable descriptive fields. Nil means
// leave unchanged; rating aggregates and ownership are not updatable here.
type TruckUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Cuisine     *string  `json:"cuisine,omitempty"`
	Description *string  `json:"description,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}
