package entities_test

import (
	"testing"
	"time"

	"github.com/ecomkit/order-lifecycle/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Timeline(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	paid := created.Add(1 * time.Hour)
	shipped := created.Add(24 * time.Hour)
	delivered := created.Add(72 * time.Hour)
	cancelled := created.Add(2 * time.Hour)

	t.Run("fresh order has pending milestones", func(t *testing.T) {
		order := entities.Order{CreatedAt: created}

		tl := order.Timeline()
		require.Len(t, tl, 4)

		assert.Equal(t, entities.MilestoneLabelCreated, tl[0].Label)
		assert.Equal(t, entities.MilestoneCompleted, tl[0].State)
		require.NotNil(t, tl[0].Timestamp)
		assert.Equal(t, created, *tl[0].Timestamp)

		for _, m := range tl[1:] {
			assert.Equal(t, entities.MilestonePending, m.State, m.Label)
			assert.Nil(t, m.Timestamp, m.Label)
		}
	})

	t.Run("shipped order", func(t *testing.T) {
		order := entities.Order{
			CreatedAt: created,
			IsPaid:    true, PaidAt: &paid,
			IsShipped: true, ShippedAt: &shipped,
		}

		tl := order.Timeline()
		require.Len(t, tl, 4)

		assert.Equal(t, entities.MilestoneCompleted, tl[1].State)
		assert.Equal(t, paid, *tl[1].Timestamp)
		assert.Equal(t, entities.MilestoneCompleted, tl[2].State)
		assert.Equal(t, shipped, *tl[2].Timestamp)
		assert.Equal(t, entities.MilestonePending, tl[3].State)
	})

	t.Run("delivered order completes every milestone", func(t *testing.T) {
		order := entities.Order{
			CreatedAt: created,
			IsPaid:    true, PaidAt: &paid,
			IsShipped: true, ShippedAt: &shipped,
			IsDelivered: true, DeliveredAt: &delivered,
		}

		tl := order.Timeline()
		require.Len(t, tl, 4)
		for _, m := range tl {
			assert.Equal(t, entities.MilestoneCompleted, m.State, m.Label)
		}
	})

	t.Run("cancellation makes skipped milestones unreachable", func(t *testing.T) {
		order := entities.Order{
			CreatedAt: created,
			IsPaid:    true, PaidAt: &paid,
			IsCancelled: true, CancelledAt: &cancelled,
			CancelReason: "changed my mind",
		}

		tl := order.Timeline()
		require.Len(t, tl, 5)

		assert.Equal(t, entities.MilestoneCompleted, tl[0].State)
		assert.Equal(t, entities.MilestoneCompleted, tl[1].State)

		assert.Equal(t, entities.MilestoneLabelShipped, tl[2].Label)
		assert.Equal(t, entities.MilestoneUnreachable, tl[2].State)
		assert.Equal(t, entities.MilestoneLabelDelivered, tl[3].Label)
		assert.Equal(t, entities.MilestoneUnreachable, tl[3].State)

		assert.Equal(t, entities.MilestoneLabelCancelled, tl[4].Label)
		assert.Equal(t, entities.MilestoneCompleted, tl[4].State)
		require.NotNil(t, tl[4].Timestamp)
		assert.Equal(t, cancelled, *tl[4].Timestamp)
	})

	t.Run("cancelled before payment leaves nothing pending", func(t *testing.T) {
		order := entities.Order{
			CreatedAt:   created,
			IsCancelled: true, CancelledAt: &cancelled,
		}

		tl := order.Timeline()
		require.Len(t, tl, 5)
		for _, m := range tl[1:4] {
			assert.Equal(t, entities.MilestoneUnreachable, m.State, m.Label)
		}
	})
}
