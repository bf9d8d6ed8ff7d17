// Package config holds the storefront policy constants and their YAML loading
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/theory-cloud/shoptheory/internal/idgen"
	"github.com/theory-cloud/shoptheory/pkg/model"
)

// CartConfig holds cart and pricing policy. TaxRate, FreeShippingThreshold
// and StandardShipping are declared policy that the cart math deliberately
// does not consume: checkout is subtotal-only.
type CartConfig struct {
	TaxRate               decimal.Decimal `yaml:"tax_rate"`
	FreeShippingThreshold decimal.Decimal `yaml:"free_shipping_threshold"`
	StandardShipping      decimal.Decimal `yaml:"standard_shipping"`
	MaxItemsPerProduct    int             `yaml:"max_items_per_product"`
}

// OrdersConfig holds order id generation and the recognized status values.
type OrdersConfig struct {
	IDPrefix string              `yaml:"id_prefix"`
	Statuses []model.OrderStatus `yaml:"statuses"`
}

// ProductsConfig holds catalog presentation policy.
type ProductsConfig struct {
	Categories   []string        `yaml:"categories"`
	MinRating    decimal.Decimal `yaml:"min_rating"`
	MaxRating    decimal.Decimal `yaml:"max_rating"`
	ItemsPerPage int             `yaml:"items_per_page"`
}

// StripeConfig is payment-form scaffolding only. The key is a test key and
// no core logic reads these values.
type StripeConfig struct {
	PublishableKey string `yaml:"publishable_key"`
	TestCardVisa   string `yaml:"test_card_visa"`
	TestCardAmex   string `yaml:"test_card_amex"`
	TestExpiry     string `yaml:"test_expiry"`
	TestCVC        string `yaml:"test_cvc"`
}

// ValidationConfig holds input validation rules.
type ValidationConfig struct {
	EmailPattern      string `yaml:"email_pattern"`
	PasswordMinLength int    `yaml:"password_min_length"`
}

// FeatureFlags gates optional behavior. EnforceQuantityLimit and
// EnforceStatusFlow turn the declared cart/order policy into enforced
// policy; both default to off, matching the storefront's historical
// behavior. The remaining flags are declared surface for the presentation
// layer.
type FeatureFlags struct {
	EnforceQuantityLimit bool `yaml:"enforce_quantity_limit"`
	EnforceStatusFlow    bool `yaml:"enforce_status_flow"`
	EnableWishlist       bool `yaml:"enable_wishlist"`
	EnableReviews        bool `yaml:"enable_reviews"`
	EnableCoupons        bool `yaml:"enable_coupons"`
	EnableUserAccounts   bool `yaml:"enable_user_accounts"`
}

// Config holds the configuration for ShopTheory
type Config struct {
	// Now and IDFunc are injectable for deterministic tests; nil means
	// time.Now and random UUID-based ids.
	Now         func() time.Time `json:"-" yaml:"-"`
	CartIDFunc  idgen.Func       `json:"-" yaml:"-"`
	OrderIDFunc idgen.Func       `json:"-" yaml:"-"`

	Cart       CartConfig       `yaml:"cart"`
	Orders     OrdersConfig     `yaml:"orders"`
	Products   ProductsConfig   `yaml:"products"`
	Stripe     StripeConfig     `yaml:"stripe"`
	Validation ValidationConfig `yaml:"validation"`
	Features   FeatureFlags     `yaml:"features"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Cart: CartConfig{
			MaxItemsPerProduct:    100,
			TaxRate:               decimal.RequireFromString("0.10"),
			FreeShippingThreshold: decimal.NewFromInt(100),
			StandardShipping:      decimal.NewFromInt(10),
		},
		Orders: OrdersConfig{
			IDPrefix: "ORD-",
			Statuses: model.Statuses(),
		},
		Products: ProductsConfig{
			Categories:   []string{"electronics", "accessories"},
			ItemsPerPage: 12,
			MinRating:    decimal.Zero,
			MaxRating:    decimal.NewFromInt(5),
		},
		Stripe: StripeConfig{
			PublishableKey: "pk_test_51234567890",
			TestCardVisa:   "4242 4242 4242 4242",
			TestCardAmex:   "3782 822463 10005",
			TestExpiry:     "12/25",
			TestCVC:        "123",
		},
		Validation: ValidationConfig{
			EmailPattern:      `^[^\s@]+@[^\s@]+\.[^\s@]+$`,
			PasswordMinLength: 8,
		},
		Features: FeatureFlags{},
	}
}

// Parse overlays YAML data onto the defaults and returns the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Load reads a YAML config file and overlays it onto the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// NowFunc returns the configured clock, or time.Now.
func (c *Config) NowFunc() func() time.Time {
	if c != nil && c.Now != nil {
		return c.Now
	}
	return time.Now
}

// CartItemID returns the configured cart id generator applied to productID.
func (c *Config) CartItemID(productID int) string {
	if c != nil && c.CartIDFunc != nil {
		return c.CartIDFunc()
	}
	return idgen.CartItemID(productID)
}

// OrderID returns the configured order id generator applied to the prefix.
func (c *Config) OrderID() string {
	if c != nil && c.OrderIDFunc != nil {
		return c.OrderIDFunc()
	}
	prefix := "ORD-"
	if c != nil && c.Orders.IDPrefix != "" {
		prefix = c.Orders.IDPrefix
	}
	return idgen.OrderID(prefix)
}
