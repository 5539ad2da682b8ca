package entities

import "time"

// OrderEvent is published to the notification collaborator after a
// successful transition. Delivery is best effort and never rolls back
// the transition that produced it.
type OrderEvent struct {
	Type       string
	OrderID    string
	CustomerID string
	Status     Status
	OccurredAt time.Time
}

const (
	EventOrderCreated   = "order.created"
	EventOrderPaid      = "order.paid"
	EventOrderUnpaid    = "order.payment_reverted"
	EventOrderShipped   = "order.shipped"
	EventOrderUnshipped = "order.shipment_reverted"
	EventOrderDelivered = "order.delivered"
	EventOrderCancelled = "order.cancelled"
	EventOrderReviewed  = "order.reviewed"
)

// EventType maps a command to the event published once it succeeds.
func (c Command) EventType() string {
	switch c {
	case CommandMarkPaid:
		return EventOrderPaid
	case CommandMarkUnpaid:
		return EventOrderUnpaid
	case CommandMarkShipped:
		return EventOrderShipped
	case CommandMarkUnshipped:
		return EventOrderUnshipped
	case CommandMarkDelivered:
		return EventOrderDelivered
	case CommandCancel:
		return EventOrderCancelled
	case CommandSubmitReview:
		return EventOrderReviewed
	default:
		return ""
	}
}

// CartRequest asks the cart collaborator to repopulate a customer's cart
// with the line items of a previous order. Reorder never mutates the
// original order.
type CartRequest struct {
	CustomerID string
	Items      []CartItem
}

type CartItem struct {
	ProductID string
	Quantity  int
}
