// File: services/order/order.go
package order

import (
	"context"
	"fmt"
	"math"
	"strings"

	"curbside/models"
	"curbside/utils"
)

// totalTolerance absorbs float representation noise when checking the
// client-supplied total against the line-item sum. Anything off by half a
// cent or more is rejected.
const totalTolerance = 0.005

// CreateOrder validates the line items and total, denormalizes the truck's
// current owning vendor onto the order, and persists it with status forced
// to pending. A failed call leaves nothing behind.
func (s *DefaultOrderService) CreateOrder(ctx context.Context, in models.OrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, utils.ValidationError{Reason: "order must contain at least one line item"}
	}
	sum := 0.0
	for _, item := range in.Items {
		if strings.TrimSpace(item.Name) == "" {
			return nil, utils.ValidationError{Reason: "line item name is required"}
		}
		if item.Quantity <= 0 {
			return nil, utils.ValidationError{Reason: fmt.Sprintf("line item %q must have a positive quantity", item.Name)}
		}
		if item.UnitPrice < 0 {
			return nil, utils.ValidationError{Reason: fmt.Sprintf("line item %q has a negative unit price", item.Name)}
		}
		sum += item.UnitPrice * float64(item.Quantity)
	}
	if sum <= 0 {
		return nil, utils.ValidationError{Reason: "order total must be positive"}
	}
	if math.Abs(sum-in.Total) >= totalTolerance {
		return nil, utils.ValidationError{Reason: fmt.Sprintf("total %.2f does not match line items (%.2f)", in.Total, sum)}
	}

	truck, err := s.TruckRepo.GetByID(ctx, in.TruckID)
	if err != nil {
		return nil, err
	}

	ord := &models.Order{
		TruckID: in.TruckID,
		UserID:  in.UserID,
		// Copied at creation time; a later ownership change must not
		// retroactively alter the order.
		VendorID: truck.VendorID,
		Items:    in.Items,
		Total:    in.Total,
		Status:   models.OrderPending,
	}
	if _, err := s.Repo.Create(ctx, ord); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return ord, nil
}

// SetStatus advances an order one step. The state machine is enforced here;
// the write itself is a single conditional update since the owning vendor is
// the only status writer.
func (s *DefaultOrderService) SetStatus(ctx context.Context, vendorID, truckID, orderID string, next models.OrderStatus) error {
	if !next.Valid() {
		return utils.ValidationError{Reason: fmt.Sprintf("unknown order status %q", next)}
	}

	ord, err := s.Repo.GetByID(ctx, truckID, orderID)
	if err != nil {
		return err
	}
	if ord.VendorID != vendorID {
		return utils.NotFoundError{Resource: "order", ID: orderID}
	}
	if !ord.Status.CanTransition(next) {
		return utils.IllegalTransitionError{From: string(ord.Status), To: string(next)}
	}

	return s.Repo.UpdateStatus(ctx, truckID, orderID, ord.Status, next)
}

// MyOrders returns a customer's cross-truck order history, newest first.
func (s *DefaultOrderService) MyOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.GetByUserID(ctx, userID)
}
