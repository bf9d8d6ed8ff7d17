// Package shoptheory provides the in-memory state core for an e-commerce
// storefront: product catalog, shopping cart, and order ledger, scoped to
// one session.
//
// Import path:
//
//	import "github.com/theory-cloud/shoptheory"
//
// Implementation lives under `pkg/` so the repo root stays minimal.
package shoptheory

import (
	"github.com/theory-cloud/shoptheory/pkg/cart"
	"github.com/theory-cloud/shoptheory/pkg/catalog"
	"github.com/theory-cloud/shoptheory/pkg/config"
	"github.com/theory-cloud/shoptheory/pkg/model"
	"github.com/theory-cloud/shoptheory/pkg/order"
	"github.com/theory-cloud/shoptheory/pkg/session"
)

type (
	Session = session.Session

	Catalog     = catalog.Catalog
	CartLedger  = cart.Ledger
	OrderLedger = order.Ledger

	// Re-export types for convenience.
	Config       = config.Config
	Product      = model.Product
	CartItem     = model.CartItem
	Order        = model.Order
	OrderInput   = model.OrderInput
	OrderStatus  = model.OrderStatus
	CustomerInfo = model.CustomerInfo
)

// Re-export order status values for convenience.
const (
	StatusPending   = model.StatusPending
	StatusCompleted = model.StatusCompleted
	StatusShipped   = model.StatusShipped
	StatusDelivered = model.StatusDelivered
	StatusCancelled = model.StatusCancelled
)

// New creates a session with the default seeded catalog.
func New(cfg *config.Config) *Session {
	return session.New(cfg)
}

// NewWithProducts creates a session with a custom catalog seed.
func NewWithProducts(cfg *config.Config, products ...model.Product) *Session {
	return session.NewWithProducts(cfg, products...)
}

// DefaultConfig returns the default storefront configuration.
func DefaultConfig() *Config {
	return config.DefaultConfig()
}

// LoadConfig reads a YAML config file and overlays it onto the defaults.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// SeedProducts returns the storefront's static product list.
func SeedProducts() []Product {
	return catalog.SeedProducts()
}
