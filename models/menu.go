package models

import "time"

// MenuItem belongs to exactly one truck and is immutable once created.
type MenuItem struct {
	ID        string    `bson:"id" json:"id"`
	TruckID   string    `bson:"truckId" json:"truckId"`
	Name      string    `bson:"name" json:"name"`
	Price     float64   `bson:"price" json:"price"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
