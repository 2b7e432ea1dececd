// File: services/feed/key.go
package feed

import "fmt"

// Collections the feed engine can watch.
const (
	CollTrucks  = "trucks"
	CollMenu    = "menu_items"
	CollOrders  = "orders"
	CollReviews = "reviews"
)

// Key identifies one logical subscription: a collection plus an optional
// truck or user scope. Keys are comparable; the multiplexer deduplicates
// subscriptions on them.
type Key struct {
	Collection string
	TruckID    string
	UserID     string
}

func (k Key) String() string {
	switch {
	case k.TruckID != "":
		return fmt.Sprintf("%s/truck=%s", k.Collection, k.TruckID)
	case k.UserID != "":
		return fmt.Sprintf("%s/user=%s", k.Collection, k.UserID)
	default:
		return k.Collection
	}
}

// TrucksKey watches the full truck catalog (the map view).
func TrucksKey() Key {
	return Key{Collection: CollTrucks}
}

// MenuKey watches one truck's menu.
func MenuKey(truckID string) Key {
	return Key{Collection: CollMenu, TruckID: truckID}
}

// TruckOrdersKey watches one truck's orders (the vendor dashboard).
func TruckOrdersKey(truckID string) Key {
	return Key{Collection: CollOrders, TruckID: truckID}
}

// UserOrdersKey watches one customer's orders across all trucks.
func UserOrdersKey(userID string) Key {
	return Key{Collection: CollOrders, UserID: userID}
}

// ReviewsKey watches one truck's top reviews.
func ReviewsKey(truckID string) Key {
	return Key{Collection: CollReviews, TruckID: truckID}
}
