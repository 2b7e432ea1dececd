// File: services/order/interface.go
package order

import (
	"context"

	orderRepo "curbside/database/repository/order"
	truckRepo "curbside/database/repository/truck"
	"curbside/models"
)

// OrderService creates orders and advances them through the fixed status
// progression. Live order lists are served by the feed engine.
type OrderService interface {
	CreateOrder(ctx context.Context, in models.OrderInput) (*models.Order, error)
	SetStatus(ctx context.Context, vendorID, truckID, orderID string, next models.OrderStatus) error
	MyOrders(ctx context.Context, userID string) ([]models.Order, error)
}

type DefaultOrderService struct {
	Repo      orderRepo.OrderRepository
	TruckRepo truckRepo.TruckRepository
}
