package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecomkit/order-lifecycle/internal/entities"
	"github.com/ecomkit/order-lifecycle/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "customer_id",
	"subtotal", "tax", "shipping_cost", "total",
	"ship_name", "ship_phone", "ship_street", "ship_city",
	"ship_region", "ship_zip", "ship_country",
	"is_paid", "paid_at", "is_shipped", "shipped_at",
	"is_delivered", "delivered_at",
	"is_cancelled", "cancelled_at", "cancel_reason",
	"review_id", "version", "created_at", "updated_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsForOrders(ctx, []string{orderID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[orderID]), nil
}

// LatestOrders returns the count most recently created orders, used by
// the cache warm-up at startup.
func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.assemble(ctx, orders)
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.CustomerID,
			o.Subtotal, o.Tax, o.Shipping, o.Total,
			o.Address.Name, nullString(o.Address.Phone), o.Address.Street, o.Address.City,
			nullString(o.Address.Region), o.Address.ZIP, o.Address.Country,
			o.IsPaid, nullTime(o.PaidAt), o.IsShipped, nullTime(o.ShippedAt),
			o.IsDelivered, nullTime(o.DeliveredAt),
			o.IsCancelled, nullTime(o.CancelledAt), nullString(o.CancelReason),
			nullString(o.ReviewID), o.Version, o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "name", "unit_price", "quantity").
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.Name, it.UnitPrice, it.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// UpdateOrder writes the mutable lifecycle fields guarded by the version
// token. When the stored version no longer matches expectedVersion the
// update touches zero rows and entities.ErrOrderConflict is returned, so
// the caller re-reads and re-evaluates its guard. Snapshots and money
// fields are frozen at creation and deliberately absent here.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order, expectedVersion int64) error {
	query, args := r.qb.Update("orders").
		Set("is_paid", o.IsPaid).
		Set("paid_at", nullTime(o.PaidAt)).
		Set("is_shipped", o.IsShipped).
		Set("shipped_at", nullTime(o.ShippedAt)).
		Set("is_delivered", o.IsDelivered).
		Set("delivered_at", nullTime(o.DeliveredAt)).
		Set("is_cancelled", o.IsCancelled).
		Set("cancelled_at", nullTime(o.CancelledAt)).
		Set("cancel_reason", nullString(o.CancelReason)).
		Set("review_id", nullString(o.ReviewID)).
		Set("updated_at", o.UpdatedAt).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"order_id": o.ID, "version": expectedVersion}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderConflict
	}
	return nil
}

func (r *postgresRepo) ListOrdersByCustomer(ctx context.Context, customerID string, f entities.CustomerFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC")

	if f.Status != nil {
		q = q.Where(statusCond(*f.Status))
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select customer orders: %w", err)
	}

	return r.assemble(ctx, orders)
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.AdminFilter) (entities.OrderPage, error) {
	cond := sq.And{}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		cond = append(cond, sq.Or{
			sq.ILike{"order_id": pattern},
			sq.ILike{"customer_id": pattern},
		})
	}
	if f.Status != nil {
		cond = append(cond, statusCond(*f.Status))
	}

	countQ := r.qb.Select("COUNT(*)").From("orders")
	listQ := r.qb.Select(orderColumns...).From("orders")
	if len(cond) > 0 {
		countQ = countQ.Where(cond)
		listQ = listQ.Where(cond)
	}

	query, args := countQ.MustSql()
	var total int64
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return entities.OrderPage{}, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args = listQ.
		OrderBy("created_at DESC").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return entities.OrderPage{}, fmt.Errorf("failed to select orders: %w", err)
	}

	result, err := r.assemble(ctx, orders)
	if err != nil {
		return entities.OrderPage{}, err
	}

	return entities.OrderPage{
		Orders:   result,
		Total:    total,
		Page:     f.Page,
		PageSize: f.PageSize,
	}, nil
}

func (r *postgresRepo) SaveAuditEntry(ctx context.Context, e entities.AuditEntry) error {
	query, args := r.qb.Insert("audit_log").
		Columns("entry_id", "actor_id", "actor_role", "action", "order_id", "description", "created_at").
		Values(e.ID, e.ActorID, string(e.ActorRole), e.Action, e.OrderID, e.Description, e.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListAuditEntries(ctx context.Context, f entities.ActivityFilter) ([]entities.AuditEntry, error) {
	q := r.qb.Select("entry_id", "actor_id", "actor_role", "action", "order_id", "description", "created_at").
		From("audit_log").
		OrderBy("created_at DESC")

	if f.OrderID != "" {
		q = q.Where(sq.Eq{"order_id": f.OrderID})
	}
	if f.ActorID != "" {
		q = q.Where(sq.Eq{"actor_id": f.ActorID})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	query, args := q.MustSql()

	var rows []AuditEntry
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select audit entries: %w", err)
	}

	entries := make([]entities.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entities.AuditEntry{
			ID:          row.EntryID,
			ActorID:     row.ActorID,
			ActorRole:   entities.Role(row.ActorRole),
			Action:      row.Action,
			OrderID:     row.OrderID,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		})
	}
	return entries, nil
}

// statusCond expresses a derived status as conditions over the flags.
// Status is never stored, so filtering decomposes it the same way
// Order.Status derives it.
func statusCond(s entities.Status) sq.Sqlizer {
	switch s {
	case entities.StatusCancelled:
		return sq.Eq{"is_cancelled": true}
	case entities.StatusDelivered:
		return sq.Eq{"is_cancelled": false, "is_delivered": true}
	case entities.StatusShipped:
		return sq.Eq{"is_cancelled": false, "is_delivered": false, "is_shipped": true}
	case entities.StatusProcessing:
		return sq.Eq{"is_cancelled": false, "is_delivered": false, "is_shipped": false, "is_paid": true}
	default:
		return sq.Eq{"is_cancelled": false, "is_delivered": false, "is_shipped": false, "is_paid": false}
	}
}

// assemble fetches the line items for a batch of order rows and maps
// everything to entities.
func (r *postgresRepo) assemble(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	itemsMap, err := r.itemsForOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID]))
	}
	return result, nil
}

func (r *postgresRepo) itemsForOrders(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select("order_id", "position", "product_id", "name", "unit_price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	itemsMap := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}
	return itemsMap, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
