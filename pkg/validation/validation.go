// Package validation implements the storefront's declared policy checks:
// quantity caps, order status values and transitions, product field
// ranges, and email format.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/theory-cloud/shoptheory/pkg/config"
	shoperrors "github.com/theory-cloud/shoptheory/pkg/errors"
	"github.com/theory-cloud/shoptheory/pkg/model"
)

// statusFlow maps each status to the statuses reachable from it.
// Forward flow is pending -> completed -> shipped -> delivered, with
// cancellation possible from any non-terminal status. delivered and
// cancelled are terminal.
var statusFlow = map[model.OrderStatus][]model.OrderStatus{
	model.StatusPending:   {model.StatusCompleted, model.StatusCancelled},
	model.StatusCompleted: {model.StatusShipped, model.StatusCancelled},
	model.StatusShipped:   {model.StatusDelivered, model.StatusCancelled},
	model.StatusDelivered: {},
	model.StatusCancelled: {},
}

// ValidStatus reports whether s is one of the recognized status values.
func ValidStatus(recognized []model.OrderStatus, s model.OrderStatus) bool {
	for _, r := range recognized {
		if r == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. Setting the same status again is allowed.
func CanTransition(from, to model.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range statusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateQuantity checks a requested line-item quantity against the
// per-product cap. A non-positive quantity always fails; the cap applies
// only when enforce is true and max is positive.
func ValidateQuantity(qty, max int, enforce bool) error {
	if qty <= 0 {
		return shoperrors.ErrInvalidQuantity
	}
	if enforce && max > 0 && qty > max {
		return shoperrors.ErrQuantityLimitExceeded
	}
	return nil
}

// ValidateProduct checks a product record against the configured field
// ranges: rating within [MinRating, MaxRating], non-negative price,
// non-negative review count, and non-empty name and category.
func ValidateProduct(cfg *config.Config, p model.Product) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: empty name", shoperrors.ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("%w: empty category", shoperrors.ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: negative price", shoperrors.ErrInvalidProduct)
	}
	if p.Reviews < 0 {
		return fmt.Errorf("%w: negative review count", shoperrors.ErrInvalidProduct)
	}
	if p.Rating.LessThan(cfg.Products.MinRating) || p.Rating.GreaterThan(cfg.Products.MaxRating) {
		return fmt.Errorf("%w: rating out of range", shoperrors.ErrInvalidProduct)
	}
	return nil
}

var (
	emailRegexMu    sync.Mutex
	emailRegexCache = map[string]*regexp.Regexp{}
)

// ValidateEmail checks an address against the configured email pattern.
func ValidateEmail(cfg *config.Config, email string) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	pattern := cfg.Validation.EmailPattern
	if pattern == "" {
		return nil
	}

	emailRegexMu.Lock()
	re, ok := emailRegexCache[pattern]
	if !ok {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			emailRegexMu.Unlock()
			return fmt.Errorf("invalid email pattern: %w", err)
		}
		emailRegexCache[pattern] = re
	}
	emailRegexMu.Unlock()

	if !re.MatchString(email) {
		return shoperrors.ErrInvalidEmail
	}
	return nil
}
