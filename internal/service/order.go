package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecomkit/order-lifecycle/internal/entities"
	"github.com/ecomkit/order-lifecycle/pkg/trm"
	"github.com/ecomkit/order-lifecycle/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string, f entities.CustomerFilter) ([]entities.Order, error)
	ListOrders(ctx context.Context, f entities.AdminFilter) (entities.OrderPage, error)

	// Insertions are idempotent, the repo uses ON CONFLICT DO NOTHING.
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error

	// UpdateOrder fails with entities.ErrOrderConflict when the stored
	// version differs from expectedVersion.
	UpdateOrder(ctx context.Context, o entities.Order, expectedVersion int64) error
}

type AuditRepo interface {
	SaveAuditEntry(ctx context.Context, e entities.AuditEntry) error
	ListAuditEntries(ctx context.Context, f entities.ActivityFilter) ([]entities.AuditEntry, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type Notifier interface {
	PublishOrderEvent(ctx context.Context, e entities.OrderEvent) error
	PublishCartRequest(ctx context.Context, req entities.CartRequest) error
}

// casMaxAttempts bounds how often a transition re-reads and re-evaluates
// its guard after losing a version race on the same order.
const casMaxAttempts = 3

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	audit     AuditRepo
	cache     Cache
	notifier  Notifier
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	audit AuditRepo,
	cache Cache,
	notifier Notifier,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		audit:     audit,
		cache:     cache,
		notifier:  notifier,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in entities.OrderDraft) (entities.Order, error) {
	now := time.Now().UTC()

	var subtotal int64
	for _, it := range in.Items {
		subtotal += it.UnitPrice * int64(it.Quantity)
	}

	order := entities.Order{
		ID:         uuid.NewString(),
		CustomerID: in.CustomerID,
		Items:      in.Items,
		Subtotal:   subtotal,
		Tax:        in.Tax,
		Shipping:   in.Shipping,
		Total:      in.Total,
		Address:    in.Address,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := order.Validate(); err != nil {
		return entities.Order{}, err
	}

	entry := entities.AuditEntry{
		ID:          uuid.NewString(),
		ActorID:     in.CustomerID,
		ActorRole:   entities.RoleCustomer,
		Action:      "create_order",
		OrderID:     order.ID,
		Description: fmt.Sprintf("placed order for %d item(s)", len(order.Items)),
		CreatedAt:   now,
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}
			if err := s.audit.SaveAuditEntry(ctx, entry); err != nil {
				return fmt.Errorf("failed to save audit entry: %w", err)
			}
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn); err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created", slog.String("order_id", order.ID))
	s.publishEvent(ctx, entities.OrderEvent{
		Type:       entities.EventOrderCreated,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status(),
		OccurredAt: now,
	})

	return order, nil
}

func (s *orderService) MarkPaid(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	return s.transition(ctx, orderID, actor, entities.CommandMarkPaid, entities.TransitionInput{})
}

func (s *orderService) MarkUnpaid(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	return s.transition(ctx, orderID, actor, entities.CommandMarkUnpaid, entities.TransitionInput{})
}

func (s *orderService) MarkShipped(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	return s.transition(ctx, orderID, actor, entities.CommandMarkShipped, entities.TransitionInput{})
}

func (s *orderService) MarkUnshipped(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	return s.transition(ctx, orderID, actor, entities.CommandMarkUnshipped, entities.TransitionInput{})
}

func (s *orderService) MarkDelivered(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	return s.transition(ctx, orderID, actor, entities.CommandMarkDelivered, entities.TransitionInput{})
}

func (s *orderService) Cancel(ctx context.Context, orderID string, actor entities.Actor, reason string) (entities.Order, error) {
	return s.transition(ctx, orderID, actor, entities.CommandCancel, entities.TransitionInput{Reason: reason})
}

func (s *orderService) SubmitReview(ctx context.Context, orderID string, actor entities.Actor, reviewID string) (entities.Order, error) {
	return s.transition(ctx, orderID, actor, entities.CommandSubmitReview, entities.TransitionInput{ReviewID: reviewID})
}

// transition runs one guarded command as a read-guard-write cycle under
// optimistic locking. Losing the version race triggers a re-read and a
// fresh guard evaluation rather than a blind overwrite; an exhausted
// retry budget surfaces entities.ErrOrderConflict to the caller.
func (s *orderService) transition(
	ctx context.Context,
	orderID string,
	actor entities.Actor,
	cmd entities.Command,
	in entities.TransitionInput,
) (entities.Order, error) {
	if cmd.AdminOnly() && !actor.IsAdmin() {
		return entities.Order{}, entities.ErrForbidden
	}

	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		order, err := s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}

		if err := authorize(actor, cmd, order); err != nil {
			return entities.Order{}, err
		}

		next, changed, err := entities.Apply(order, cmd, in, time.Now().UTC())
		if err != nil {
			return entities.Order{}, err
		}
		if !changed {
			// Idempotent no-op: no write, no audit entry, no event.
			return order, nil
		}

		entry := entities.AuditEntry{
			ID:          uuid.NewString(),
			ActorID:     actor.ID,
			ActorRole:   actor.Role,
			Action:      cmd.String(),
			OrderID:     order.ID,
			Description: describe(cmd, in),
			CreatedAt:   next.UpdatedAt,
		}

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.UpdateOrder(ctx, next, order.Version); err != nil {
				return err
			}
			return s.audit.SaveAuditEntry(ctx, entry)
		})
		if errors.Is(err, entities.ErrOrderConflict) {
			s.logger.Debug("transition lost version race, retrying",
				slog.String("order_id", orderID), slog.String("command", cmd.String()))
			continue
		}
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to apply %s: %w", cmd, err)
		}

		next.Version = order.Version + 1
		s.cache.Delete(orderID)
		s.publishEvent(ctx, entities.OrderEvent{
			Type:       cmd.EventType(),
			OrderID:    next.ID,
			CustomerID: next.CustomerID,
			Status:     next.Status(),
			OccurredAt: next.UpdatedAt,
		})

		return next, nil
	}

	return entities.Order{}, entities.ErrOrderConflict
}

// Reorder builds a cart-population request from the order's line-item
// snapshot and hands it to the cart collaborator. The original order is
// never mutated.
func (s *orderService) Reorder(ctx context.Context, orderID string, actor entities.Actor) (entities.CartRequest, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.CartRequest{}, err
	}
	if !order.OwnedBy(actor) {
		return entities.CartRequest{}, entities.ErrForbidden
	}

	req := entities.CartRequest{
		CustomerID: order.CustomerID,
		Items:      make([]entities.CartItem, 0, len(order.Items)),
	}
	for _, it := range order.Items {
		req.Items = append(req.Items, entities.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	if err := s.notifier.PublishCartRequest(ctx, req); err != nil {
		return entities.CartRequest{}, fmt.Errorf("failed to publish cart request: %w", err)
	}

	entry := entities.AuditEntry{
		ID:          uuid.NewString(),
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Action:      "reorder",
		OrderID:     order.ID,
		Description: fmt.Sprintf("requested reorder of %d item(s)", len(req.Items)),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.audit.SaveAuditEntry(ctx, entry); err != nil {
		return entities.CartRequest{}, fmt.Errorf("failed to save audit entry: %w", err)
	}

	return req, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, entities.ErrInvalidOrder
		}
		return s.checkReadAccess(order, actor)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
	} else {
		s.cache.Set(orderID, data)
	}

	return s.checkReadAccess(order, actor)
}

func (s *orderService) ListOrdersForCustomer(ctx context.Context, customerID string, actor entities.Actor, f entities.CustomerFilter) ([]entities.Order, error) {
	if !actor.IsAdmin() && actor.ID != customerID {
		return nil, entities.ErrForbidden
	}
	return s.repo.ListOrdersByCustomer(ctx, customerID, f)
}

func (s *orderService) ListOrdersForAdmin(ctx context.Context, actor entities.Actor, f entities.AdminFilter) (entities.OrderPage, error) {
	if !actor.IsAdmin() {
		return entities.OrderPage{}, entities.ErrForbidden
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
	return s.repo.ListOrders(ctx, f)
}

func (s *orderService) ListActivity(ctx context.Context, actor entities.Actor, f entities.ActivityFilter) ([]entities.AuditEntry, error) {
	if !actor.IsAdmin() {
		return nil, entities.ErrForbidden
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	return s.audit.ListAuditEntries(ctx, f)
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(order.ID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) checkReadAccess(order entities.Order, actor entities.Actor) (entities.Order, error) {
	if actor.IsAdmin() || order.OwnedBy(actor) {
		return order, nil
	}
	return entities.Order{}, entities.ErrForbidden
}

// authorize enforces ownership rules that need the loaded record. Role
// checks for admin-only commands happen before the load.
func authorize(actor entities.Actor, cmd entities.Command, order entities.Order) error {
	switch cmd {
	case entities.CommandCancel:
		if !actor.IsAdmin() && !order.OwnedBy(actor) {
			return entities.ErrForbidden
		}
	case entities.CommandSubmitReview:
		if !order.OwnedBy(actor) {
			return entities.ErrForbidden
		}
	}
	return nil
}

func describe(cmd entities.Command, in entities.TransitionInput) string {
	switch cmd {
	case entities.CommandMarkPaid:
		return "marked order as paid"
	case entities.CommandMarkUnpaid:
		return "reverted payment mark"
	case entities.CommandMarkShipped:
		return "marked order as shipped"
	case entities.CommandMarkUnshipped:
		return "reverted shipment mark"
	case entities.CommandMarkDelivered:
		return "marked order as delivered"
	case entities.CommandCancel:
		return fmt.Sprintf("cancelled order: %s", in.Reason)
	case entities.CommandSubmitReview:
		return "submitted a review"
	default:
		return cmd.String()
	}
}

// publishEvent is best effort: the notification collaborator must never
// roll back a committed transition.
func (s *orderService) publishEvent(ctx context.Context, e entities.OrderEvent) {
	if err := s.notifier.PublishOrderEvent(ctx, e); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("type", e.Type), slog.String("order_id", e.OrderID), slog.Any("error", err))
	}
}
