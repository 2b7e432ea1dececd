// File: database/repository/order/status.go
package orderRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"curbside/models"
	"curbside/utils"
)

// UpdateStatus moves an order from one status to the next. Only the owning
// vendor mutates status, so no transaction is needed; the filter on the
// expected current status still catches a stale caller.
func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, truckID, orderID string, from, to models.OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": orderID, "truckId": truckID, "status": from}
	update := bson.M{"$set": bson.M{
		"status":    to,
		"updatedAt": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		// The order moved on (or vanished) between read and write.
		return utils.IllegalTransitionError{From: string(from), To: string(to)}
	}
	return nil
}
