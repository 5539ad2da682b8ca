package entities_test

import (
	"testing"
	"time"

	"github.com/ecomkit/order-lifecycle/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() entities.Order {
	return entities.Order{
		ID:         "o-1",
		CustomerID: "c-1",
		Items: []entities.LineItem{
			{ProductID: "p-1", Name: "Mug", UnitPrice: 1250, Quantity: 2},
			{ProductID: "p-2", Name: "Poster", UnitPrice: 900, Quantity: 1},
		},
		Subtotal: 3400,
		Tax:      340,
		Shipping: 500,
		Total:    4240,
		Version:  1,
	}
}

func TestOrder_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(o *entities.Order)
		wantErr bool
	}{
		{
			name:   "valid order",
			mutate: func(o *entities.Order) {},
		},
		{
			name:    "missing customer",
			mutate:  func(o *entities.Order) { o.CustomerID = "" },
			wantErr: true,
		},
		{
			name:    "no items",
			mutate:  func(o *entities.Order) { o.Items = nil },
			wantErr: true,
		},
		{
			name:    "zero quantity",
			mutate:  func(o *entities.Order) { o.Items[0].Quantity = 0 },
			wantErr: true,
		},
		{
			name:    "negative unit price",
			mutate:  func(o *entities.Order) { o.Items[1].UnitPrice = -1 },
			wantErr: true,
		},
		{
			name:    "subtotal does not match item sum",
			mutate:  func(o *entities.Order) { o.Subtotal = 9999 },
			wantErr: true,
		},
		{
			name:    "total does not match breakdown",
			mutate:  func(o *entities.Order) { o.Total = o.Subtotal },
			wantErr: true,
		},
		{
			name: "free item is allowed",
			mutate: func(o *entities.Order) {
				o.Items = append(o.Items, entities.LineItem{ProductID: "p-3", Name: "Sticker", UnitPrice: 0, Quantity: 1})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := validOrder()
			tc.mutate(&order)

			err := order.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidOrder)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrder_OwnedBy(t *testing.T) {
	order := validOrder()

	assert.True(t, order.OwnedBy(entities.Actor{ID: "c-1", Role: entities.RoleCustomer}))
	assert.False(t, order.OwnedBy(entities.Actor{ID: "c-2", Role: entities.RoleCustomer}))
	// Admins act through their role, not through ownership.
	assert.False(t, order.OwnedBy(entities.Actor{ID: "c-1", Role: entities.RoleAdmin}))
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	paidAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	order := validOrder()
	order.IsPaid = true
	order.PaidAt = &paidAt
	order.Address = entities.Address{Name: "Jane Doe", Street: "1 Main St", City: "Springfield", ZIP: "12345", Country: "US"}
	order.CreatedAt = paidAt.Add(-time.Hour)
	order.UpdatedAt = paidAt

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order, got)
}

func TestOrder_UnmarshalGarbage(t *testing.T) {
	var got entities.Order
	assert.Error(t, got.Unmarshal([]byte("not gob")))
}

func TestParseRole(t *testing.T) {
	role, ok := entities.ParseRole("admin")
	assert.True(t, ok)
	assert.Equal(t, entities.RoleAdmin, role)

	role, ok = entities.ParseRole("customer")
	assert.True(t, ok)
	assert.Equal(t, entities.RoleCustomer, role)

	_, ok = entities.ParseRole("superuser")
	assert.False(t, ok)
}
