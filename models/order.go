package models

import "time"

// OrderStatus is the fixed order progression. pending is the sole initial
// state; rejected and ready are terminal.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderRejected  OrderStatus = "rejected"
)

// orderTransitions maps each state to the states reachable from it.
// No skips, no backward moves; the only shortcut is pending -> rejected.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderAccepted, OrderRejected},
	OrderAccepted:  {OrderPreparing},
	OrderPreparing: {OrderReady},
	OrderReady:     {},
	OrderRejected:  {},
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransition reports whether the move s -> next is legal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a line-item snapshot taken from the menu at order time, so
// later menu edits never retroactively change a placed order.
type OrderItem struct {
	Name      string  `bson:"name" json:"name"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order belongs to one truck. VendorID is a copy of the truck's owner taken
// at creation time; a later ownership change must not alter placed orders.
type Order struct {
	ID        string      `bson:"id" json:"id"`
	TruckID   string      `bson:"truckId" json:"truckId"`
	UserID    string      `bson:"userId" json:"userId"`
	VendorID  string      `bson:"vendorId" json:"vendorId"`
	Items     []OrderItem `bson:"items" json:"items"`
	Total     float64     `bson:"total" json:"total"`
	Status    OrderStatus `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// OrderInput is a customer's create request. Status is never taken from the
// caller; new orders are always forced to pending.
type OrderInput struct {
	TruckID string
	UserID  string
	Items   []OrderItem
	Total   float64
}
