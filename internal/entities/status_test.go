package entities_test

import (
	"testing"
	"time"

	"github.com/ecomkit/order-lifecycle/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Status(t *testing.T) {
	testCases := []struct {
		name  string
		order entities.Order
		want  entities.Status
	}{
		{
			name:  "fresh order awaits payment",
			order: entities.Order{},
			want:  entities.StatusAwaitingPayment,
		},
		{
			name:  "paid order is processing",
			order: entities.Order{IsPaid: true},
			want:  entities.StatusProcessing,
		},
		{
			name:  "shipped order",
			order: entities.Order{IsPaid: true, IsShipped: true},
			want:  entities.StatusShipped,
		},
		{
			name:  "delivered order",
			order: entities.Order{IsPaid: true, IsShipped: true, IsDelivered: true},
			want:  entities.StatusDelivered,
		},
		{
			name:  "cancelled wins over every other flag",
			order: entities.Order{IsPaid: true, IsShipped: true, IsDelivered: true, IsCancelled: true},
			want:  entities.StatusCancelled,
		},
		{
			name:  "cancelled before payment",
			order: entities.Order{IsCancelled: true},
			want:  entities.StatusCancelled,
		},
		{
			name:  "shipped without payment flag still reads shipped",
			order: entities.Order{IsShipped: true},
			want:  entities.StatusShipped,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.order.Status())
		})
	}
}

func TestOrder_StatusIsPure(t *testing.T) {
	now := time.Now().UTC()
	order := entities.Order{IsPaid: true, PaidAt: &now}

	before := order
	_ = order.Status()

	assert.Equal(t, before, order)
	assert.Equal(t, order.Status(), order.Status())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, entities.StatusDelivered.IsTerminal())
	assert.True(t, entities.StatusCancelled.IsTerminal())
	assert.False(t, entities.StatusAwaitingPayment.IsTerminal())
	assert.False(t, entities.StatusProcessing.IsTerminal())
	assert.False(t, entities.StatusShipped.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, ok := entities.ParseStatus("shipped")
	assert.True(t, ok)
	assert.Equal(t, entities.StatusShipped, status)

	_, ok = entities.ParseStatus("in_transit")
	assert.False(t, ok)

	_, ok = entities.ParseStatus("")
	assert.False(t, ok)
}
