package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ecomkit/order-lifecycle/internal/entities"
	"github.com/ecomkit/order-lifecycle/internal/service"
	mocks "github.com/ecomkit/order-lifecycle/internal/service/mocks"
	txMocks "github.com/ecomkit/order-lifecycle/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderAPI interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	ListOrdersForCustomer(ctx context.Context, customerID string, actor entities.Actor, f entities.CustomerFilter) ([]entities.Order, error)
	ListOrdersForAdmin(ctx context.Context, actor entities.Actor, f entities.AdminFilter) (entities.OrderPage, error)
	ListActivity(ctx context.Context, actor entities.Actor, f entities.ActivityFilter) ([]entities.AuditEntry, error)
	MarkPaid(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	MarkShipped(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	Cancel(ctx context.Context, orderID string, actor entities.Actor, reason string) (entities.Order, error)
	SubmitReview(ctx context.Context, orderID string, actor entities.Actor, reviewID string) (entities.Order, error)
	Reorder(ctx context.Context, orderID string, actor entities.Actor) (entities.CartRequest, error)
	WarmUpCache(ctx context.Context, count int) error
}

type testMocks struct {
	repo     *mocks.MockOrderRepo
	audit    *mocks.MockAuditRepo
	cache    *mocks.MockCache
	notifier *mocks.MockNotifier
	tx       *txMocks.MockManager
}

func newService(t *testing.T) (*testMocks, orderAPI) {
	t.Helper()

	m := &testMocks{
		repo:     mocks.NewMockOrderRepo(t),
		audit:    mocks.NewMockAuditRepo(t),
		cache:    mocks.NewMockCache(t),
		notifier: mocks.NewMockNotifier(t),
		tx:       txMocks.NewMockManager(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, m.tx, m.repo, m.audit, m.cache, m.notifier)
	return m, svc
}

// passThroughTx makes the transaction manager run callbacks inline.
func passThroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

var (
	admin    = entities.Actor{ID: "a-1", Role: entities.RoleAdmin}
	owner    = entities.Actor{ID: "c-1", Role: entities.RoleCustomer}
	stranger = entities.Actor{ID: "c-2", Role: entities.RoleCustomer}
)

func storedOrder() entities.Order {
	return entities.Order{
		ID:         "o-1",
		CustomerID: "c-1",
		Items: []entities.LineItem{
			{ProductID: "p-1", Name: "Mug", UnitPrice: 1250, Quantity: 2},
		},
		Subtotal:  2500,
		Total:     2500,
		Version:   3,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	draft := entities.OrderDraft{
		CustomerID: "c-1",
		Items: []entities.LineItem{
			{ProductID: "p-1", Name: "Mug", UnitPrice: 1250, Quantity: 2},
		},
		Tax:      250,
		Shipping: 500,
		Total:    3250,
	}

	t.Run("OK", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
		m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.CreateOrder(context.Background(), draft)
		require.NoError(t, err)

		assert.NotEmpty(t, order.ID)
		assert.Equal(t, "c-1", order.CustomerID)
		assert.Equal(t, int64(2500), order.Subtotal)
		assert.Equal(t, int64(3250), order.Total)
		assert.Equal(t, int64(1), order.Version)
		assert.Equal(t, entities.StatusAwaitingPayment, order.Status())
	})

	t.Run("money mismatch is rejected before any write", func(t *testing.T) {
		_, svc := newService(t)

		broken := draft
		broken.Total = 9999

		_, err := svc.CreateOrder(context.Background(), broken)
		assert.ErrorIs(t, err, entities.ErrInvalidOrder)
	})

	t.Run("retry works (first attempt fails, second succeeds)", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
			Once().Return(errors.New("temporary error"))
		m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
			Once().Return(nil)
		m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.CreateOrder(context.Background(), draft)
		assert.NoError(t, err)
	})

	t.Run("event publish failure does not fail creation", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		m.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
		m.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
			Return(errors.New("broker down")).Once()

		_, err := svc.CreateOrder(context.Background(), draft)
		assert.NoError(t, err)
	})
}

func TestOrderService_MarkPaid(t *testing.T) {
	t.Run("admin marks an order paid", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()
		m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3)).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("o-1").Return().Once()
		m.notifier.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.MarkPaid(context.Background(), "o-1", admin)
		require.NoError(t, err)

		assert.True(t, order.IsPaid)
		assert.Equal(t, int64(4), order.Version)
		assert.Equal(t, entities.StatusProcessing, order.Status())
	})

	t.Run("customer is forbidden before the order is even loaded", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.MarkPaid(context.Background(), "o-1", owner)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("already paid is an idempotent no-op", func(t *testing.T) {
		m, svc := newService(t)

		paid := storedOrder()
		paid.IsPaid = true
		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(paid, nil).Once()

		order, err := svc.MarkPaid(context.Background(), "o-1", admin)
		require.NoError(t, err)

		// No write, no audit entry, no event. Same version back.
		assert.Equal(t, paid, order)
	})

	t.Run("order not found", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.MarkPaid(context.Background(), "missing", admin)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_MarkShipped(t *testing.T) {
	t.Run("guard failure writes nothing", func(t *testing.T) {
		m, svc := newService(t)

		// Unpaid, so shipping is rejected. No update, no audit entry.
		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()

		_, err := svc.MarkShipped(context.Background(), "o-1", admin)

		var invalid *entities.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, entities.CommandMarkShipped, invalid.Command)
		assert.Equal(t, entities.StatusAwaitingPayment, invalid.Status)
	})

	t.Run("version race re-reads and succeeds", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		paid := storedOrder()
		paid.IsPaid = true
		racedAhead := paid
		racedAhead.Version = 4

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(paid, nil).Once()
		m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3)).
			Return(entities.ErrOrderConflict).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(racedAhead, nil).Once()
		m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(4)).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("o-1").Return().Once()
		m.notifier.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.MarkShipped(context.Background(), "o-1", admin)
		require.NoError(t, err)
		assert.True(t, order.IsShipped)
		assert.Equal(t, int64(5), order.Version)
	})

	t.Run("persistent conflict surfaces after retries", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		paid := storedOrder()
		paid.IsPaid = true

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(paid, nil).Times(3)
		m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3)).
			Return(entities.ErrOrderConflict).Times(3)

		_, err := svc.MarkShipped(context.Background(), "o-1", admin)
		assert.ErrorIs(t, err, entities.ErrOrderConflict)
	})

	t.Run("race can also flip the guard", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		paid := storedOrder()
		paid.IsPaid = true
		cancelledMeanwhile := storedOrder()
		cancelledMeanwhile.IsCancelled = true
		cancelledMeanwhile.Version = 4

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(paid, nil).Once()
		m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3)).
			Return(entities.ErrOrderConflict).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(cancelledMeanwhile, nil).Once()

		_, err := svc.MarkShipped(context.Background(), "o-1", admin)

		var invalid *entities.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, entities.StatusCancelled, invalid.Status)
	})
}

func TestOrderService_Cancel(t *testing.T) {
	t.Run("owner cancels with reason", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()
		m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3)).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, e entities.AuditEntry) error {
				assert.Equal(t, "cancel", e.Action)
				assert.Equal(t, owner.ID, e.ActorID)
				assert.Equal(t, "o-1", e.OrderID)
				return nil
			}).Once()
		m.cache.EXPECT().Delete("o-1").Return().Once()
		m.notifier.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.Cancel(context.Background(), "o-1", owner, "changed my mind")
		require.NoError(t, err)
		assert.True(t, order.IsCancelled)
		assert.Equal(t, "changed my mind", order.CancelReason)
	})

	t.Run("admin may cancel any order", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()
		m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3)).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("o-1").Return().Once()
		m.notifier.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.Cancel(context.Background(), "o-1", admin, "fraud check failed")
		assert.NoError(t, err)
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()

		_, err := svc.Cancel(context.Background(), "o-1", stranger, "not mine")
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("missing reason", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()

		_, err := svc.Cancel(context.Background(), "o-1", owner, "")
		assert.ErrorIs(t, err, entities.ErrValidation)
	})
}

func TestOrderService_SubmitReview(t *testing.T) {
	deliveredAt := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

	delivered := storedOrder()
	delivered.IsPaid = true
	delivered.IsShipped = true
	delivered.IsDelivered = true
	delivered.DeliveredAt = &deliveredAt

	t.Run("owner reviews a delivered order", func(t *testing.T) {
		m, svc := newService(t)
		passThroughTx(m.tx)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(delivered, nil).Once()
		m.repo.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3)).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).Return(nil).Once()
		m.cache.EXPECT().Delete("o-1").Return().Once()
		m.notifier.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.SubmitReview(context.Background(), "o-1", owner, "rev-1")
		require.NoError(t, err)
		assert.Equal(t, "rev-1", order.ReviewID)
	})

	t.Run("admin cannot review on the customer's behalf", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(delivered, nil).Once()

		_, err := svc.SubmitReview(context.Background(), "o-1", admin, "rev-1")
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("review before delivery is rejected", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()

		_, err := svc.SubmitReview(context.Background(), "o-1", owner, "rev-1")

		var invalid *entities.InvalidTransitionError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestOrderService_Reorder(t *testing.T) {
	t.Run("owner reorder publishes a cart request", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()
		m.notifier.EXPECT().PublishCartRequest(mock.Anything, entities.CartRequest{
			CustomerID: "c-1",
			Items:      []entities.CartItem{{ProductID: "p-1", Quantity: 2}},
		}).Return(nil).Once()
		m.audit.EXPECT().SaveAuditEntry(mock.Anything, mock.Anything).Return(nil).Once()

		req, err := svc.Reorder(context.Background(), "o-1", owner)
		require.NoError(t, err)
		assert.Equal(t, "c-1", req.CustomerID)
		assert.Len(t, req.Items, 1)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()

		_, err := svc.Reorder(context.Background(), "o-1", stranger)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("publish failure fails the reorder", func(t *testing.T) {
		m, svc := newService(t)

		brokerErr := errors.New("broker down")
		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(storedOrder(), nil).Once()
		m.notifier.EXPECT().PublishCartRequest(mock.Anything, mock.Anything).Return(brokerErr).Once()

		_, err := svc.Reorder(context.Background(), "o-1", owner)
		assert.ErrorIs(t, err, brokerErr)
	})
}

func TestOrderService_GetOrderByID(t *testing.T) {
	valid := storedOrder()
	validData, err := valid.Marshal()
	require.NoError(t, err)

	t.Run("success from cache", func(t *testing.T) {
		m, svc := newService(t)

		m.cache.EXPECT().Get("o-1").Return(validData, true).Once()

		got, err := svc.GetOrderByID(context.Background(), "o-1", owner)
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	})

	t.Run("cache hit but unmarshal fails", func(t *testing.T) {
		m, svc := newService(t)

		m.cache.EXPECT().Get("o-1").Return([]byte("broken"), true).Once()

		_, err := svc.GetOrderByID(context.Background(), "o-1", owner)
		assert.ErrorIs(t, err, entities.ErrInvalidOrder)
	})

	t.Run("success from repo and set to cache", func(t *testing.T) {
		m, svc := newService(t)

		m.cache.EXPECT().Get("o-1").Return(nil, false).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(valid, nil).Once()
		m.cache.EXPECT().Set("o-1", validData).Return().Once()

		got, err := svc.GetOrderByID(context.Background(), "o-1", admin)
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		m, svc := newService(t)

		m.cache.EXPECT().Get("missing").Return(nil, false).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.GetOrderByID(context.Background(), "missing", admin)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("second attempt from repo", func(t *testing.T) {
		m, svc := newService(t)

		m.cache.EXPECT().Get("o-1").Return(nil, false).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").
			Return(entities.Order{}, errors.New("some error")).Once()
		m.repo.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(valid, nil).Once()
		m.cache.EXPECT().Set("o-1", validData).Return().Once()

		got, err := svc.GetOrderByID(context.Background(), "o-1", admin)
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	})

	t.Run("stranger cannot read someone else's order", func(t *testing.T) {
		m, svc := newService(t)

		m.cache.EXPECT().Get("o-1").Return(validData, true).Once()

		_, err := svc.GetOrderByID(context.Background(), "o-1", stranger)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestOrderService_Listing(t *testing.T) {
	t.Run("customer lists own orders", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().ListOrdersByCustomer(mock.Anything, "c-1", entities.CustomerFilter{}).
			Return([]entities.Order{storedOrder()}, nil).Once()

		orders, err := svc.ListOrdersForCustomer(context.Background(), "c-1", owner, entities.CustomerFilter{})
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("customer cannot list another customer's orders", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.ListOrdersForCustomer(context.Background(), "c-1", stranger, entities.CustomerFilter{})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("admin list applies pagination defaults", func(t *testing.T) {
		m, svc := newService(t)

		m.repo.EXPECT().ListOrders(mock.Anything, entities.AdminFilter{Page: 1, PageSize: 20}).
			Return(entities.OrderPage{Page: 1, PageSize: 20}, nil).Once()

		_, err := svc.ListOrdersForAdmin(context.Background(), admin, entities.AdminFilter{})
		assert.NoError(t, err)
	})

	t.Run("admin list is admin only", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.ListOrdersForAdmin(context.Background(), owner, entities.AdminFilter{})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("activity feed is admin only", func(t *testing.T) {
		_, svc := newService(t)

		_, err := svc.ListActivity(context.Background(), owner, entities.ActivityFilter{})
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("activity feed applies default limit", func(t *testing.T) {
		m, svc := newService(t)

		m.audit.EXPECT().ListAuditEntries(mock.Anything, entities.ActivityFilter{Limit: 50}).
			Return(nil, nil).Once()

		_, err := svc.ListActivity(context.Background(), admin, entities.ActivityFilter{})
		assert.NoError(t, err)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	m, svc := newService(t)

	orders := []entities.Order{storedOrder()}
	data, err := orders[0].Marshal()
	require.NoError(t, err)

	m.repo.EXPECT().LatestOrders(mock.Anything, 100).Return(orders, nil).Once()
	m.cache.EXPECT().Set("o-1", data).Return().Once()

	assert.NoError(t, svc.WarmUpCache(context.Background(), 100))
}
