// Package session wires the catalog, cart, and order stores into one
// explicit per-session context object.
package session

import (
	"github.com/theory-cloud/shoptheory/pkg/cart"
	"github.com/theory-cloud/shoptheory/pkg/catalog"
	"github.com/theory-cloud/shoptheory/pkg/config"
	shoperrors "github.com/theory-cloud/shoptheory/pkg/errors"
	"github.com/theory-cloud/shoptheory/pkg/model"
	"github.com/theory-cloud/shoptheory/pkg/order"
)

// Session owns the three stores for one running storefront session (one
// browser tab/process). The stores never reference each other; the
// session is the only place they compose.
type Session struct {
	config  *config.Config
	catalog *catalog.Catalog
	cart    *cart.Ledger
	orders  *order.Ledger
}

// New creates a session with the default seeded catalog. A nil config
// falls back to DefaultConfig.
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return NewWithProducts(cfg, catalog.SeedProducts()...)
}

// NewWithProducts creates a session whose catalog holds the given products
// instead of the default seed list.
func NewWithProducts(cfg *config.Config, products ...model.Product) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Session{
		config:  cfg,
		catalog: catalog.New(cfg.Products.ItemsPerPage, products...),
		cart:    cart.New(cfg),
		orders:  order.New(cfg),
	}
}

// Catalog returns the session's product catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Cart returns the session's cart ledger.
func (s *Session) Cart() *cart.Ledger {
	return s.cart
}

// Orders returns the session's order ledger.
func (s *Session) Orders() *order.Ledger {
	return s.orders
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.config
}

// Checkout snapshots the current cart into a new pending order and clears
// the cart. The order receives copies of the line items; later cart
// mutations never reach it. Returns ErrEmptyCart when there is nothing to
// order.
func (s *Session) Checkout(customer model.CustomerInfo) (model.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return model.Order{}, shoperrors.NewError("checkout", "session", shoperrors.ErrEmptyCart)
	}

	created, err := s.orders.Create(model.OrderInput{
		Customer: customer,
		Items:    items,
		Total:    s.cart.Total(),
	})
	if err != nil {
		return model.Order{}, err
	}

	s.cart.Clear()
	return created, nil
}

// Reset clears the cart and order ledgers, leaving the catalog untouched.
func (s *Session) Reset() {
	s.cart.Clear()
	s.orders.Clear()
}
