// Package testing provides fixtures and scenario helpers for testing
// applications that use ShopTheory.
package testing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theory-cloud/shoptheory/internal/idgen"
	"github.com/theory-cloud/shoptheory/pkg/config"
	"github.com/theory-cloud/shoptheory/pkg/model"
	"github.com/theory-cloud/shoptheory/pkg/session"
)

// TestProduct returns a minimal valid product with the given id. Price is
// id dollars to keep cart math easy to eyeball in assertions.
func TestProduct(id int) model.Product {
	return model.Product{
		ID:          id,
		Name:        fmt.Sprintf("Test Product %d", id),
		Price:       decimal.NewFromInt(int64(id)),
		Category:    "test",
		Image:       fmt.Sprintf("https://example.com/products/%d.png", id),
		Description: fmt.Sprintf("Test product %d description", id),
		Rating:      decimal.RequireFromString("4.5"),
		Reviews:     10,
	}
}

// TestProducts returns n test products with ids 1..n.
func TestProducts(n int) []model.Product {
	products := make([]model.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, TestProduct(i))
	}
	return products
}

// TestCustomer returns a customer fixture that passes email validation.
func TestCustomer() model.CustomerInfo {
	return model.CustomerInfo{
		Name:            "Test Customer",
		Email:           "customer@example.com",
		ShippingAddress: "123 Test Street",
	}
}

// DeterministicConfig returns a default config with sequential cart and
// order ids so tests can assert on exact identifiers.
func DeterministicConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.CartIDFunc = idgen.Sequence("cart-")
	cfg.OrderIDFunc = idgen.Sequence("ORD-")
	return cfg
}

// SeededSession returns a session whose catalog holds n test products.
func SeededSession(n int) *session.Session {
	return session.NewWithProducts(DeterministicConfig(), TestProducts(n)...)
}

// CartScenario builds a session with products already in the cart, for
// tests that start from a non-empty cart.
type CartScenario struct {
	Quantities map[int]int // product id -> quantity
	Products   int         // catalog size
}

// Build constructs the session and applies the scenario's adds.
func (s CartScenario) Build() (*session.Session, error) {
	n := s.Products
	if n == 0 {
		n = len(s.Quantities)
	}
	sess := SeededSession(n)
	for id, qty := range s.Quantities {
		p, err := sess.Catalog().GetByID(id)
		if err != nil {
			return nil, err
		}
		if _, err := sess.Cart().AddItem(p, qty); err != nil {
			return nil, err
		}
	}
	return sess, nil
}
