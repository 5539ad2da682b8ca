package repo

import (
	"database/sql"
	"time"

	"github.com/ecomkit/order-lifecycle/internal/entities"
)

type Order struct {
	OrderID    string `db:"order_id"`
	CustomerID string `db:"customer_id"`

	Subtotal     int64 `db:"subtotal"`
	Tax          int64 `db:"tax"`
	ShippingCost int64 `db:"shipping_cost"`
	Total        int64 `db:"total"`

	ShipName    string         `db:"ship_name"`
	ShipPhone   sql.NullString `db:"ship_phone"`
	ShipStreet  string         `db:"ship_street"`
	ShipCity    string         `db:"ship_city"`
	ShipRegion  sql.NullString `db:"ship_region"`
	ShipZIP     string         `db:"ship_zip"`
	ShipCountry string         `db:"ship_country"`

	IsPaid      bool         `db:"is_paid"`
	PaidAt      sql.NullTime `db:"paid_at"`
	IsShipped   bool         `db:"is_shipped"`
	ShippedAt   sql.NullTime `db:"shipped_at"`
	IsDelivered bool         `db:"is_delivered"`
	DeliveredAt sql.NullTime `db:"delivered_at"`

	IsCancelled  bool           `db:"is_cancelled"`
	CancelledAt  sql.NullTime   `db:"cancelled_at"`
	CancelReason sql.NullString `db:"cancel_reason"`

	ReviewID sql.NullString `db:"review_id"`

	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Item struct {
	OrderID   string `db:"order_id"`
	Position  int    `db:"position"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	UnitPrice int64  `db:"unit_price"`
	Quantity  int    `db:"quantity"`
}

type AuditEntry struct {
	EntryID     string    `db:"entry_id"`
	ActorID     string    `db:"actor_id"`
	ActorRole   string    `db:"actor_role"`
	Action      string    `db:"action"`
	OrderID     string    `db:"order_id"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:         o.OrderID,
		CustomerID: o.CustomerID,

		Subtotal: o.Subtotal,
		Tax:      o.Tax,
		Shipping: o.ShippingCost,
		Total:    o.Total,

		Address: entities.Address{
			Name:    o.ShipName,
			Phone:   nullStringToString(o.ShipPhone),
			Street:  o.ShipStreet,
			City:    o.ShipCity,
			Region:  nullStringToString(o.ShipRegion),
			ZIP:     o.ShipZIP,
			Country: o.ShipCountry,
		},

		IsPaid:      o.IsPaid,
		PaidAt:      nullTimeToPtr(o.PaidAt),
		IsShipped:   o.IsShipped,
		ShippedAt:   nullTimeToPtr(o.ShippedAt),
		IsDelivered: o.IsDelivered,
		DeliveredAt: nullTimeToPtr(o.DeliveredAt),

		IsCancelled:  o.IsCancelled,
		CancelledAt:  nullTimeToPtr(o.CancelledAt),
		CancelReason: nullStringToString(o.CancelReason),

		ReviewID: nullStringToString(o.ReviewID),

		Version:   o.Version,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
