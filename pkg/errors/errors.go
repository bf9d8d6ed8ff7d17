// Package errors defines error types and utilities for ShopTheory
package errors

import (
	"errors"
	"fmt"
)

// Common errors that can occur in ShopTheory operations
var (
	// ErrProductNotFound is returned when a product lookup misses the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound is returned when a cart item lookup misses the cart
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrOrderNotFound is returned when an order lookup misses the ledger
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidProductID is returned when an identifier cannot be coerced to a product ID
	ErrInvalidProductID = errors.New("invalid product id")

	// ErrInvalidQuantity is returned when a quantity must be positive but isn't
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrQuantityLimitExceeded is returned when the per-product quantity cap policy rejects an add
	ErrQuantityLimitExceeded = errors.New("quantity limit exceeded")

	// ErrInvalidStatus is returned when an order status is not one of the recognized values
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidTransition is returned when a status change violates the order status flow
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrEmptyCart is returned when checkout is attempted with no cart items
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidProduct is returned when a product record fails field validation
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidEmail is returned when an email address fails the configured pattern
	ErrInvalidEmail = errors.New("invalid email address")
)

// ShoptheoryError represents a detailed error with operation context
type ShoptheoryError struct {
	Err    error
	Op     string
	Entity string
}

// Error implements the error interface
func (e *ShoptheoryError) Error() string {
	// Only the operation and underlying error appear here; entity
	// identifiers stay out of error strings so they are safe to log.
	return fmt.Sprintf("shoptheory: %s operation failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ShoptheoryError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *ShoptheoryError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new ShoptheoryError
func NewError(op, entity string, err error) *ShoptheoryError {
	return &ShoptheoryError{
		Op:     op,
		Entity: entity,
		Err:    err,
	}
}

// IsNotFound checks if an error indicates a lookup miss on any store
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCartItemNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}

// IsPolicyViolation checks if an error was produced by an enforcement policy hook
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrQuantityLimitExceeded) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidTransition)
}
