package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"time"
)

type Address struct {
	Name    string
	Phone   string
	Street  string
	City    string
	Region  string
	ZIP     string
	Country string
}

// LineItem is a snapshot taken at order creation. Catalog changes after
// checkout must never alter it.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int
}

type Order struct {
	ID         string
	CustomerID string

	Items    []LineItem
	Subtotal int64
	Tax      int64
	Shipping int64
	Total    int64

	Address Address

	IsPaid bool
	PaidAt *time.Time

	IsShipped bool
	ShippedAt *time.Time

	IsDelivered bool
	DeliveredAt *time.Time

	IsCancelled  bool
	CancelledAt  *time.Time
	CancelReason string

	// ReviewID is empty until the owner reviews a delivered order.
	ReviewID string

	// Version is the optimistic-lock token, incremented on every write.
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderDraft is the snapshot the checkout collaborator supplies at
// creation time. The engine freezes it into an Order and never
// re-derives it from live catalog data.
type OrderDraft struct {
	CustomerID string
	Items      []LineItem
	Tax        int64
	Shipping   int64
	Total      int64
	Address    Address
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderConflict = errors.New("order was modified concurrently")
	ErrForbidden     = errors.New("actor is not allowed to perform this action")
	ErrInvalidOrder  = errors.New("invalid order")
)

// Validate checks the money invariant: subtotal equals the sum of line
// items and total equals subtotal + tax + shipping. All four values are
// frozen after creation, so this only runs at the creation boundary.
func (o *Order) Validate() error {
	if o.CustomerID == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidOrder)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}
	var sum int64
	for i, it := range o.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", ErrInvalidOrder, i)
		}
		if it.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d has negative unit price", ErrInvalidOrder, i)
		}
		sum += it.UnitPrice * int64(it.Quantity)
	}
	if o.Subtotal != sum {
		return fmt.Errorf("%w: subtotal %d does not match item sum %d", ErrInvalidOrder, o.Subtotal, sum)
	}
	if o.Total != o.Subtotal+o.Tax+o.Shipping {
		return fmt.Errorf("%w: total %d does not match subtotal+tax+shipping", ErrInvalidOrder, o.Total)
	}
	return nil
}

func (o *Order) OwnedBy(actor Actor) bool {
	return actor.Role == RoleCustomer && actor.ID == o.CustomerID
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(Address{})
	gob.Register(LineItem{})
}
