package handler

import (
	"time"

	"github.com/ecomkit/order-lifecycle/internal/entities"
)

// Order is the wire representation of an order. Status and timeline are
// derived from the flags on the way out, never read from storage.
type Order struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`

	Items    []LineItem `json:"items"`
	Subtotal int64      `json:"subtotal"`
	Tax      int64      `json:"tax"`
	Shipping int64      `json:"shipping"`
	Total    int64      `json:"total"`

	ShippingAddress Address `json:"shipping_address"`

	Status   string      `json:"status"`
	Timeline []Milestone `json:"timeline"`

	IsPaid      bool       `json:"is_paid"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	IsShipped   bool       `json:"is_shipped"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	IsDelivered bool       `json:"is_delivered"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	IsCancelled  bool       `json:"is_cancelled"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CancelReason string     `json:"cancel_reason,omitempty"`

	ReviewID string `json:"review_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineItem is a creation-time snapshot of a purchased product
type LineItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type Address struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	Region  string `json:"region,omitempty"`
	ZIP     string `json:"zip" validate:"required"`
	Country string `json:"country" validate:"required"`
}

type Milestone struct {
	Label     string     `json:"label"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	State     string     `json:"state"`
}

type OrderPage struct {
	Orders   []Order `json:"orders"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

type AuditEntry struct {
	EntryID     string    `json:"entry_id"`
	ActorID     string    `json:"actor_id"`
	ActorRole   string    `json:"actor_role"`
	Action      string    `json:"action"`
	OrderID     string    `json:"order_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateOrderRequest carries the checkout snapshot: line items, money
// breakdown and the shipping address, all frozen after creation.
type CreateOrderRequest struct {
	CustomerID string     `json:"customer_id" validate:"required"`
	Items      []LineItem `json:"items" validate:"required,min=1,dive"`
	Tax        int64      `json:"tax" validate:"gte=0"`
	Shipping   int64      `json:"shipping" validate:"gte=0"`
	Total      int64      `json:"total" validate:"gt=0"`
	Address    Address    `json:"shipping_address" validate:"required"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type SubmitReviewRequest struct {
	ReviewID string `json:"review_id" validate:"required"`
}

type CartRequest struct {
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// InvalidTransitionResponse reports a rejected command together with the
// status it was rejected in, for caller display.
type InvalidTransitionResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Command string `json:"command"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	timeline := o.Timeline()
	milestones := make([]Milestone, 0, len(timeline))
	for _, m := range timeline {
		milestones = append(milestones, Milestone{
			Label:     m.Label,
			Timestamp: m.Timestamp,
			State:     string(m.State),
		})
	}

	return Order{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,

		Items:    items,
		Subtotal: o.Subtotal,
		Tax:      o.Tax,
		Shipping: o.Shipping,
		Total:    o.Total,

		ShippingAddress: Address{
			Name:    o.Address.Name,
			Phone:   o.Address.Phone,
			Street:  o.Address.Street,
			City:    o.Address.City,
			Region:  o.Address.Region,
			ZIP:     o.Address.ZIP,
			Country: o.Address.Country,
		},

		Status:   o.Status().String(),
		Timeline: milestones,

		IsPaid:      o.IsPaid,
		PaidAt:      o.PaidAt,
		IsShipped:   o.IsShipped,
		ShippedAt:   o.ShippedAt,
		IsDelivered: o.IsDelivered,
		DeliveredAt: o.DeliveredAt,

		IsCancelled:  o.IsCancelled,
		CancelledAt:  o.CancelledAt,
		CancelReason: o.CancelReason,

		ReviewID: o.ReviewID,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func PageEntityToJSON(p entities.OrderPage) OrderPage {
	return OrderPage{
		Orders:   OrdersEntityToJSON(p.Orders),
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

func AuditEntryToJSON(e entities.AuditEntry) AuditEntry {
	return AuditEntry{
		EntryID:     e.ID,
		ActorID:     e.ActorID,
		ActorRole:   string(e.ActorRole),
		Action:      e.Action,
		OrderID:     e.OrderID,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func CartRequestToJSON(req entities.CartRequest) CartRequest {
	items := make([]CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return CartRequest{CustomerID: req.CustomerID, Items: items}
}

func CreateRequestToDraft(req CreateOrderRequest) entities.OrderDraft {
	items := make([]entities.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}

	return entities.OrderDraft{
		CustomerID: req.CustomerID,
		Items:      items,
		Tax:        req.Tax,
		Shipping:   req.Shipping,
		Total:      req.Total,
		Address: entities.Address{
			Name:    req.Address.Name,
			Phone:   req.Address.Phone,
			Street:  req.Address.Street,
			City:    req.Address.City,
			Region:  req.Address.Region,
			ZIP:     req.Address.ZIP,
			Country: req.Address.Country,
		},
	}
}
