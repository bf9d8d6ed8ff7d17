package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/shoptheory/pkg/config"
	shoperrors "github.com/theory-cloud/shoptheory/pkg/errors"
	"github.com/theory-cloud/shoptheory/pkg/model"
)

// TestNew tests session construction
func TestNew(t *testing.T) {
	t.Run("Nil config falls back to defaults", func(t *testing.T) {
		s := New(nil)

		require.NotNil(t, s)
		assert.NotNil(t, s.Config())
		assert.Equal(t, 6, s.Catalog().Len())
		assert.Equal(t, 0, s.Cart().Count())
		assert.Equal(t, 0, s.Orders().Len())
	})

	t.Run("Default catalog carries the seed list", func(t *testing.T) {
		s := New(nil)

		p, err := s.Catalog().GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Premium Wireless Headphones", p.Name)
	})

	t.Run("Custom products replace the seed", func(t *testing.T) {
		s := NewWithProducts(nil, model.Product{ID: 9, Name: "Only", Category: "test"})

		assert.Equal(t, 1, s.Catalog().Len())
		_, err := s.Catalog().GetByID(1)
		assert.ErrorIs(t, err, shoperrors.ErrProductNotFound)
	})

	t.Run("Sessions are independent", func(t *testing.T) {
		a := New(nil)
		b := New(nil)

		p, err := a.Catalog().GetByID(1)
		require.NoError(t, err)
		_, err = a.Cart().Add(p)
		require.NoError(t, err)

		assert.Equal(t, 1, a.Cart().Count())
		assert.Equal(t, 0, b.Cart().Count())
	})
}

// TestCheckout tests the cart-to-order composition
func TestCheckout(t *testing.T) {
	customer := model.CustomerInfo{
		Name:            "Test Customer",
		Email:           "customer@example.com",
		ShippingAddress: "123 Test Street",
	}

	t.Run("Creates a pending order from the cart and clears it", func(t *testing.T) {
		fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		cfg := config.DefaultConfig()
		cfg.Now = func() time.Time { return fixed }
		s := New(cfg)

		headphones, err := s.Catalog().GetByID(1)
		require.NoError(t, err)
		hub, err := s.Catalog().GetByID(6)
		require.NoError(t, err)
		_, err = s.Cart().AddItem(headphones, 2)
		require.NoError(t, err)
		_, err = s.Cart().Add(hub)
		require.NoError(t, err)

		created, err := s.Checkout(customer)

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, created.Status)
		assert.Equal(t, fixed, created.CreatedAt)
		assert.Equal(t, customer, created.Customer)
		require.Len(t, created.Items, 2)
		// 2 x 199.99 + 79.99
		assert.True(t, created.Total.Equal(decimal.RequireFromString("479.97")))

		// Cart is cleared, order is in the ledger.
		assert.Equal(t, 0, s.Cart().Count())
		stored, err := s.Orders().Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, stored.ID)
	})

	t.Run("Order items are isolated from later cart activity", func(t *testing.T) {
		s := New(nil)
		p, err := s.Catalog().GetByID(1)
		require.NoError(t, err)
		_, err = s.Cart().AddItem(p, 2)
		require.NoError(t, err)

		created, err := s.Checkout(customer)
		require.NoError(t, err)

		// Refill the cart after checkout; the order keeps its snapshot.
		_, err = s.Cart().AddItem(p, 50)
		require.NoError(t, err)

		stored, err := s.Orders().Get(created.ID)
		require.NoError(t, err)
		require.Len(t, stored.Items, 1)
		assert.Equal(t, 2, stored.Items[0].Quantity)
	})

	t.Run("Empty cart cannot check out", func(t *testing.T) {
		s := New(nil)

		_, err := s.Checkout(customer)

		require.ErrorIs(t, err, shoperrors.ErrEmptyCart)
		assert.Equal(t, 0, s.Orders().Len())
	})
}

// TestReset tests session reset semantics
func TestReset(t *testing.T) {
	s := New(nil)
	p, err := s.Catalog().GetByID(2)
	require.NoError(t, err)
	_, err = s.Cart().Add(p)
	require.NoError(t, err)
	_, err = s.Checkout(model.CustomerInfo{Name: "c", Email: "c@example.com"})
	require.NoError(t, err)
	_, err = s.Cart().Add(p)
	require.NoError(t, err)

	s.Reset()

	assert.Equal(t, 0, s.Cart().Count())
	assert.Equal(t, 0, s.Orders().Len())
	// The catalog is untouched.
	assert.Equal(t, 6, s.Catalog().Len())
}
