package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"curbside/models"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.OrderPending, models.OrderAccepted, true},
		{models.OrderPending, models.OrderRejected, true},
		{models.OrderAccepted, models.OrderPreparing, true},
		{models.OrderPreparing, models.OrderReady, true},

		// No skips.
		{models.OrderPending, models.OrderPreparing, false},
		{models.OrderPending, models.OrderReady, false},
		{models.OrderAccepted, models.OrderReady, false},

		// No backward moves.
		{models.OrderAccepted, models.OrderPending, false},
		{models.OrderPreparing, models.OrderAccepted, false},

		// rejected only out of pending.
		{models.OrderAccepted, models.OrderRejected, false},
		{models.OrderPreparing, models.OrderRejected, false},

		// Terminal states go nowhere.
		{models.OrderReady, models.OrderAccepted, false},
		{models.OrderRejected, models.OrderAccepted, false},
		{models.OrderRejected, models.OrderPending, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, models.OrderReady.Terminal())
	assert.True(t, models.OrderRejected.Terminal())
	assert.False(t, models.OrderPending.Terminal())
	assert.False(t, models.OrderAccepted.Terminal())
	assert.False(t, models.OrderPreparing.Terminal())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, models.OrderPending.Valid())
	assert.False(t, models.OrderStatus("shipped").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}
