// Package order provides the order ledger: creation, lookup, and status
// tracking for the orders of one session.
package order

import (
	"sync"

	"github.com/theory-cloud/shoptheory/pkg/config"
	shoperrors "github.com/theory-cloud/shoptheory/pkg/errors"
	"github.com/theory-cloud/shoptheory/pkg/model"
	"github.com/theory-cloud/shoptheory/pkg/validation"
)

// Ledger holds the orders created during one session. Orders are appended
// and updated, never deleted.
type Ledger struct {
	config *config.Config
	orders []model.Order
	mu     sync.RWMutex
}

// New creates an empty order ledger. A nil config falls back to defaults.
func New(cfg *config.Config) *Ledger {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Ledger{config: cfg}
}

// Create builds an order from the caller-supplied input, assigns a unique
// prefixed id and the creation timestamp, sets the status to pending,
// appends it to the ledger, and returns the full order. The input is not
// validated; extra fields ride in Metadata.
func (l *Ledger) Create(in model.OrderInput) (model.Order, error) {
	items := make([]model.CartItem, len(in.Items))
	copy(items, in.Items)

	order := model.Order{
		ID:        l.config.OrderID(),
		Customer:  in.Customer,
		Items:     items,
		Total:     in.Total,
		Metadata:  in.Metadata,
		CreatedAt: l.config.NowFunc()(),
		Status:    model.StatusPending,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, order)
	return order, nil
}

// Get returns the order with the given id, or ErrOrderNotFound.
func (l *Ledger) Get(orderID string) (model.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return model.Order{}, shoperrors.ErrOrderNotFound
}

// UpdateStatus sets the order's status directly. An unknown order id is a
// silent no-op. When the EnforceStatusFlow feature is on, unrecognized
// status values and illegal transitions are rejected and the order is left
// unchanged; with the flag off the status is an open field.
func (l *Ledger) UpdateStatus(orderID string, status model.OrderStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID != orderID {
			continue
		}
		if l.config.Features.EnforceStatusFlow {
			if !validation.ValidStatus(l.config.Orders.Statuses, status) {
				return shoperrors.NewError("update_status", "order", shoperrors.ErrInvalidStatus)
			}
			if !validation.CanTransition(l.orders[i].Status, status) {
				return shoperrors.NewError("update_status", "order", shoperrors.ErrInvalidTransition)
			}
		}
		l.orders[i].Status = status
		return nil
	}
	return nil
}

// Complete marks the order completed. Equivalent to
// UpdateStatus(orderID, StatusCompleted).
func (l *Ledger) Complete(orderID string) error {
	return l.UpdateStatus(orderID, model.StatusCompleted)
}

// Cancel marks the order cancelled. Equivalent to
// UpdateStatus(orderID, StatusCancelled).
func (l *Ledger) Cancel(orderID string) error {
	return l.UpdateStatus(orderID, model.StatusCancelled)
}

// All returns a snapshot copy of the ledger in creation order.
func (l *Ledger) All() []model.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len returns the number of orders created so far.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}

// Clear empties the ledger. Exposed for session reset only; live order
// flows never delete orders.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = nil
}
