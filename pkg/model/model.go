// Package model defines the entity types shared by the ShopTheory stores
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. Products are immutable after catalog
// construction; stores hand out copies, never interior pointers.
type Product struct {
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Rating      decimal.Decimal `json:"rating" yaml:"rating"`
	Name        string          `json:"name" yaml:"name"`
	Category    string          `json:"category" yaml:"category"`
	Image       string          `json:"image" yaml:"image"`
	Description string          `json:"description" yaml:"description"`
	ID          int             `json:"id" yaml:"id"`
	Reviews     int             `json:"reviews" yaml:"reviews"`
}

// CartItem is one cart line item: a denormalized snapshot of the product
// taken at add time plus a quantity. Later catalog changes never propagate
// into existing cart items.
type CartItem struct {
	Product `yaml:",inline"`
	// CartItemID is opaque and unique across the life of the cart, even
	// when the same product is removed and re-added.
	CartItemID string `json:"cart_item_id" yaml:"cart_item_id"`
	Quantity   int    `json:"quantity" yaml:"quantity"`
}

// LineTotal returns price times quantity for this line.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderStatus constants
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"   // order received, awaiting processing
	StatusCompleted OrderStatus = "completed" // payment processed, order confirmed
	StatusShipped   OrderStatus = "shipped"   // order sent to customer
	StatusDelivered OrderStatus = "delivered" // order received by customer
	StatusCancelled OrderStatus = "cancelled" // order cancelled by customer/admin
)

// Statuses returns the recognized order status values in lifecycle order.
func Statuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusCompleted,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

// CustomerInfo carries the customer fields collected at checkout.
type CustomerInfo struct {
	Name            string `json:"name" yaml:"name"`
	Email           string `json:"email" yaml:"email"`
	ShippingAddress string `json:"shipping_address" yaml:"shipping_address"`
}

// OrderInput is the caller-supplied portion of an order. The ledger does
// not validate it; Metadata carries any extra fields the storefront wants
// to attach.
type OrderInput struct {
	Total    decimal.Decimal `json:"total"`
	Metadata map[string]any  `json:"metadata,omitempty"`
	Customer CustomerInfo    `json:"customer"`
	Items    []CartItem      `json:"items"`
}

// Order is one created order. ID and CreatedAt are assigned at creation
// and never reassigned; orders are never deleted.
type Order struct {
	CreatedAt time.Time       `json:"created_at"`
	Total     decimal.Decimal `json:"total"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
	ID        string          `json:"id"`
	Status    OrderStatus     `json:"status"`
	Customer  CustomerInfo    `json:"customer"`
	Items     []CartItem      `json:"items"`
}
