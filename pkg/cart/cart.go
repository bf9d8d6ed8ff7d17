// Package cart provides the shopping cart ledger: line-item management and
// the derived count/subtotal/total values.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/theory-cloud/shoptheory/pkg/config"
	shoperrors "github.com/theory-cloud/shoptheory/pkg/errors"
	"github.com/theory-cloud/shoptheory/pkg/model"
	"github.com/theory-cloud/shoptheory/pkg/validation"
)

// Ledger holds the cart line items for one session. At most one line item
// exists per distinct product id; adds merge into the existing line.
type Ledger struct {
	config *config.Config
	items  []model.CartItem
	mu     sync.RWMutex
}

// New creates an empty cart ledger. A nil config falls back to defaults.
func New(cfg *config.Config) *Ledger {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Ledger{config: cfg}
}

// Add adds one unit of the product, merging into an existing line item if
// the product is already in the cart.
func (l *Ledger) Add(p model.Product) (model.CartItem, error) {
	return l.AddItem(p, 1)
}

// AddItem adds qty units of the product. If a line item for p.ID already
// exists its quantity increases by qty; otherwise a new line item is
// created with a fresh CartItemID. qty must be positive. When the
// EnforceQuantityLimit feature is on, a resulting quantity above
// Cart.MaxItemsPerProduct is rejected and the cart is left unchanged.
func (l *Ledger) AddItem(p model.Product, qty int) (model.CartItem, error) {
	if qty <= 0 {
		return model.CartItem{}, shoperrors.NewError("add", "cart", shoperrors.ErrInvalidQuantity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].ID == p.ID {
			next := l.items[i].Quantity + qty
			if err := l.checkLimit(next); err != nil {
				return model.CartItem{}, err
			}
			l.items[i].Quantity = next
			return l.items[i], nil
		}
	}

	if err := l.checkLimit(qty); err != nil {
		return model.CartItem{}, err
	}

	item := model.CartItem{
		Product:    p,
		CartItemID: l.config.CartItemID(p.ID),
		Quantity:   qty,
	}
	l.items = append(l.items, item)
	return item, nil
}

// checkLimit is the per-product quantity cap policy hook. The cap is
// declared config either way; only the feature flag makes it binding.
func (l *Ledger) checkLimit(qty int) error {
	err := validation.ValidateQuantity(qty,
		l.config.Cart.MaxItemsPerProduct,
		l.config.Features.EnforceQuantityLimit)
	if err != nil {
		return shoperrors.NewError("add", "cart", err)
	}
	return nil
}

// RemoveItem removes the line item with the given id. Absent ids are a
// silent no-op.
func (l *Ledger) RemoveItem(cartItemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.remove(cartItemID)
}

func (l *Ledger) remove(cartItemID string) {
	for i := range l.items {
		if l.items[i].CartItemID == cartItemID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line item's quantity to qty exactly. A qty of
// zero or less removes the item. Absent ids are a silent no-op.
func (l *Ledger) UpdateQuantity(cartItemID string, qty int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if qty <= 0 {
		l.remove(cartItemID)
		return
	}
	for i := range l.items {
		if l.items[i].CartItemID == cartItemID {
			l.items[i].Quantity = qty
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}

// Find returns the line item with the given id, or ErrCartItemNotFound.
func (l *Ledger) Find(cartItemID string) (model.CartItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, item := range l.items {
		if item.CartItemID == cartItemID {
			return item, nil
		}
	}
	return model.CartItem{}, shoperrors.ErrCartItemNotFound
}

// Items returns a snapshot copy of the cart contents, valid until the next
// mutation.
func (l *Ledger) Items() []model.CartItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

// Count returns the sum of quantities across all line items; 0 for an
// empty cart.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the unrounded sum of price times quantity across all
// line items. No tax or shipping is added: those constants exist in config
// but checkout is subtotal-only.
func (l *Ledger) Subtotal() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Total returns the subtotal rounded to 2 decimal places, half away from
// zero (19.995 rounds to 20.00).
func (l *Ledger) Total() decimal.Decimal {
	return l.Subtotal().Round(2)
}
