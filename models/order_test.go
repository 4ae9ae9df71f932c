package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		status, ok := ParseOrderStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, OrderStatus(valid), status)
	}

	for _, invalid := range []string{"", "Pending", "refunded", "done"} {
		_, ok := ParseOrderStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, true},

		// no skipping ahead
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusDelivered, false},

		// no moving backwards
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusProcessing, false},

		// terminal states stay terminal
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestOrderPatchApply(t *testing.T) {
	order := Order{Status: OrderStatusPending, Notes: "ring the bell"}

	status := OrderStatusProcessing
	OrderPatch{Status: &status}.Apply(&order)

	assert.Equal(t, OrderStatusProcessing, order.Status)
	assert.Equal(t, "ring the bell", order.Notes, "unset fields must survive a patch")

	notes := ""
	OrderPatch{Notes: &notes}.Apply(&order)
	assert.Equal(t, OrderStatusProcessing, order.Status)
	assert.Empty(t, order.Notes, "an explicit empty string clears the field")
}
