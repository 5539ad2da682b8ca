package entities_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ecomkit/order-lifecycle/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transitionNow = time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

func paidOrder() entities.Order {
	paidAt := transitionNow.Add(-time.Hour)
	return entities.Order{ID: "o-1", CustomerID: "c-1", IsPaid: true, PaidAt: &paidAt, Version: 2}
}

func shippedOrder() entities.Order {
	o := paidOrder()
	shippedAt := transitionNow.Add(-30 * time.Minute)
	o.IsShipped = true
	o.ShippedAt = &shippedAt
	return o
}

func deliveredOrder() entities.Order {
	o := shippedOrder()
	deliveredAt := transitionNow.Add(-10 * time.Minute)
	o.IsDelivered = true
	o.DeliveredAt = &deliveredAt
	return o
}

func cancelledOrder() entities.Order {
	cancelledAt := transitionNow.Add(-time.Hour)
	return entities.Order{ID: "o-1", CustomerID: "c-1", IsCancelled: true, CancelledAt: &cancelledAt, CancelReason: "out of stock"}
}

func TestApply(t *testing.T) {
	testCases := []struct {
		name        string
		order       entities.Order
		cmd         entities.Command
		in          entities.TransitionInput
		wantChanged bool
		wantErr     error
		wantInvalid bool
		check       func(t *testing.T, next entities.Order)
	}{
		{
			name:        "mark paid on fresh order",
			order:       entities.Order{ID: "o-1"},
			cmd:         entities.CommandMarkPaid,
			wantChanged: true,
			check: func(t *testing.T, next entities.Order) {
				assert.True(t, next.IsPaid)
				require.NotNil(t, next.PaidAt)
				assert.Equal(t, transitionNow, *next.PaidAt)
				assert.Equal(t, entities.StatusProcessing, next.Status())
			},
		},
		{
			name:        "mark paid twice is a no-op",
			order:       paidOrder(),
			cmd:         entities.CommandMarkPaid,
			wantChanged: false,
		},
		{
			name:        "mark unpaid reverts a payment mistake",
			order:       paidOrder(),
			cmd:         entities.CommandMarkUnpaid,
			wantChanged: true,
			check: func(t *testing.T, next entities.Order) {
				assert.False(t, next.IsPaid)
				assert.Nil(t, next.PaidAt)
				assert.Equal(t, entities.StatusAwaitingPayment, next.Status())
			},
		},
		{
			name:        "mark unpaid on unpaid order is a no-op",
			order:       entities.Order{ID: "o-1"},
			cmd:         entities.CommandMarkUnpaid,
			wantChanged: false,
		},
		{
			name:        "mark unpaid rejected once shipped",
			order:       shippedOrder(),
			cmd:         entities.CommandMarkUnpaid,
			wantInvalid: true,
		},
		{
			name:        "mark shipped requires payment",
			order:       entities.Order{ID: "o-1"},
			cmd:         entities.CommandMarkShipped,
			wantInvalid: true,
		},
		{
			name:        "mark shipped on paid order",
			order:       paidOrder(),
			cmd:         entities.CommandMarkShipped,
			wantChanged: true,
			check: func(t *testing.T, next entities.Order) {
				assert.True(t, next.IsShipped)
				require.NotNil(t, next.ShippedAt)
			},
		},
		{
			name:        "mark shipped twice is a no-op",
			order:       shippedOrder(),
			cmd:         entities.CommandMarkShipped,
			wantChanged: false,
		},
		{
			name:        "mark unshipped reverts a shipment mistake",
			order:       shippedOrder(),
			cmd:         entities.CommandMarkUnshipped,
			wantChanged: true,
			check: func(t *testing.T, next entities.Order) {
				assert.False(t, next.IsShipped)
				assert.Nil(t, next.ShippedAt)
				assert.True(t, next.IsPaid)
			},
		},
		{
			name:        "mark unshipped on unshipped order is a no-op",
			order:       paidOrder(),
			cmd:         entities.CommandMarkUnshipped,
			wantChanged: false,
		},
		{
			name:        "mark unshipped rejected once delivered",
			order:       deliveredOrder(),
			cmd:         entities.CommandMarkUnshipped,
			wantInvalid: true,
		},
		{
			name:        "mark delivered requires shipment",
			order:       paidOrder(),
			cmd:         entities.CommandMarkDelivered,
			wantInvalid: true,
		},
		{
			name:        "mark delivered on shipped order",
			order:       shippedOrder(),
			cmd:         entities.CommandMarkDelivered,
			wantChanged: true,
			check: func(t *testing.T, next entities.Order) {
				assert.True(t, next.IsDelivered)
				assert.Equal(t, entities.StatusDelivered, next.Status())
			},
		},
		{
			name:        "mark delivered twice is a no-op",
			order:       deliveredOrder(),
			cmd:         entities.CommandMarkDelivered,
			wantChanged: false,
		},
		{
			name:        "cancel with reason",
			order:       paidOrder(),
			cmd:         entities.CommandCancel,
			in:          entities.TransitionInput{Reason: "changed my mind"},
			wantChanged: true,
			check: func(t *testing.T, next entities.Order) {
				assert.True(t, next.IsCancelled)
				require.NotNil(t, next.CancelledAt)
				assert.Equal(t, "changed my mind", next.CancelReason)
				assert.Equal(t, entities.StatusCancelled, next.Status())
			},
		},
		{
			name:    "cancel without reason",
			order:   paidOrder(),
			cmd:     entities.CommandCancel,
			wantErr: entities.ErrValidation,
		},
		{
			name:        "cancel rejected once delivered",
			order:       deliveredOrder(),
			cmd:         entities.CommandCancel,
			in:          entities.TransitionInput{Reason: "too late"},
			wantInvalid: true,
		},
		{
			name:        "submit review on delivered order",
			order:       deliveredOrder(),
			cmd:         entities.CommandSubmitReview,
			in:          entities.TransitionInput{ReviewID: "rev-1"},
			wantChanged: true,
			check: func(t *testing.T, next entities.Order) {
				assert.Equal(t, "rev-1", next.ReviewID)
				assert.Equal(t, entities.StatusDelivered, next.Status())
			},
		},
		{
			name:        "submit review before delivery",
			order:       shippedOrder(),
			cmd:         entities.CommandSubmitReview,
			in:          entities.TransitionInput{ReviewID: "rev-1"},
			wantInvalid: true,
		},
		{
			name: "second review is rejected",
			order: func() entities.Order {
				o := deliveredOrder()
				o.ReviewID = "rev-1"
				return o
			}(),
			cmd:         entities.CommandSubmitReview,
			in:          entities.TransitionInput{ReviewID: "rev-2"},
			wantInvalid: true,
		},
		{
			name:    "submit review without reference",
			order:   deliveredOrder(),
			cmd:     entities.CommandSubmitReview,
			wantErr: entities.ErrValidation,
		},
		{
			name:    "unknown command",
			order:   paidOrder(),
			cmd:     entities.Command("explode"),
			wantErr: entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.order

			next, changed, err := entities.Apply(tc.order, tc.cmd, tc.in, transitionNow)

			// Apply never mutates its input.
			assert.Equal(t, before, tc.order)

			if tc.wantInvalid {
				var invalid *entities.InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tc.cmd, invalid.Command)
				assert.Equal(t, tc.order.Status(), invalid.Status)
				assert.False(t, changed)
				return
			}
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.False(t, changed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, changed)

			if !tc.wantChanged {
				// Idempotent no-op returns the order untouched.
				assert.Equal(t, tc.order, next)
				return
			}

			assert.Equal(t, transitionNow, next.UpdatedAt)
			if tc.check != nil {
				tc.check(t, next)
			}
		})
	}
}

func TestApply_CancelledIsTerminal(t *testing.T) {
	commands := []entities.Command{
		entities.CommandMarkPaid,
		entities.CommandMarkUnpaid,
		entities.CommandMarkShipped,
		entities.CommandMarkUnshipped,
		entities.CommandMarkDelivered,
		entities.CommandCancel,
		entities.CommandSubmitReview,
	}

	for _, cmd := range commands {
		t.Run(cmd.String(), func(t *testing.T) {
			in := entities.TransitionInput{Reason: "again", ReviewID: "rev-1"}
			_, changed, err := entities.Apply(cancelledOrder(), cmd, in, transitionNow)

			var invalid *entities.InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, entities.StatusCancelled, invalid.Status)
			assert.False(t, changed)
		})
	}
}

// A full happy path: payment, shipment, delivery, review.
func TestApply_Lifecycle(t *testing.T) {
	order := entities.Order{ID: "o-1", CustomerID: "c-1", CreatedAt: transitionNow.Add(-time.Hour)}

	steps := []struct {
		cmd  entities.Command
		in   entities.TransitionInput
		want entities.Status
	}{
		{entities.CommandMarkPaid, entities.TransitionInput{}, entities.StatusProcessing},
		{entities.CommandMarkShipped, entities.TransitionInput{}, entities.StatusShipped},
		{entities.CommandMarkDelivered, entities.TransitionInput{}, entities.StatusDelivered},
		{entities.CommandSubmitReview, entities.TransitionInput{ReviewID: "rev-1"}, entities.StatusDelivered},
	}

	now := transitionNow
	for _, step := range steps {
		next, changed, err := entities.Apply(order, step.cmd, step.in, now)
		require.NoError(t, err, step.cmd)
		require.True(t, changed, step.cmd)
		assert.Equal(t, step.want, next.Status(), step.cmd)
		order = next
		now = now.Add(time.Hour)
	}

	tl := order.Timeline()
	require.Len(t, tl, 4)
	for _, m := range tl {
		assert.Equal(t, entities.MilestoneCompleted, m.State, m.Label)
	}
}

func TestCommand_AdminOnly(t *testing.T) {
	assert.True(t, entities.CommandMarkPaid.AdminOnly())
	assert.True(t, entities.CommandMarkUnpaid.AdminOnly())
	assert.True(t, entities.CommandMarkShipped.AdminOnly())
	assert.True(t, entities.CommandMarkUnshipped.AdminOnly())
	assert.True(t, entities.CommandMarkDelivered.AdminOnly())
	assert.False(t, entities.CommandCancel.AdminOnly())
	assert.False(t, entities.CommandSubmitReview.AdminOnly())
}

func TestInvalidTransitionError_Message(t *testing.T) {
	err := &entities.InvalidTransitionError{Command: entities.CommandMarkShipped, Status: entities.StatusAwaitingPayment}
	assert.Equal(t, "cannot mark_shipped an order in status awaiting_payment", err.Error())
	assert.False(t, errors.Is(err, entities.ErrValidation))
}
