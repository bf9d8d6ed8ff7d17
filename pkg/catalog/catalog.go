// Package catalog provides the fixed, preloaded product catalog with
// lookup-by-id and filter-by-category.
package catalog

import (
	"encoding/json"
	"strconv"
	"sync"

	shoperrors "github.com/theory-cloud/shoptheory/pkg/errors"
	"github.com/theory-cloud/shoptheory/pkg/model"
)

// Catalog holds an immutable product list. No mutation operations are
// exposed; lookups hand out copies.
type Catalog struct {
	products     []model.Product
	byID         map[int]int
	itemsPerPage int
	mu           sync.RWMutex
}

// New creates a catalog from the given products. itemsPerPage controls
// Page; values below 1 fall back to the whole catalog per page.
func New(itemsPerPage int, products ...model.Product) *Catalog {
	c := &Catalog{
		products:     make([]model.Product, len(products)),
		byID:         make(map[int]int, len(products)),
		itemsPerPage: itemsPerPage,
	}
	copy(c.products, products)
	for i, p := range c.products {
		if _, exists := c.byID[p.ID]; !exists {
			c.byID[p.ID] = i
		}
	}
	return c
}

// CoerceID converts a numeric or numeric-string identifier to an int
// product id. Fractional floats and non-numeric strings return
// ErrInvalidProductID.
func CoerceID(id any) (int, error) {
	switch v := id.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, shoperrors.ErrInvalidProductID
		}
		return n, nil
	case float32:
		return CoerceID(float64(v))
	case json.Number:
		return CoerceID(string(v))
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, shoperrors.ErrInvalidProductID
		}
		return n, nil
	default:
		return 0, shoperrors.ErrInvalidProductID
	}
}

// GetByID returns the product matching the given identifier. The id may be
// any integer type, a whole float, or a numeric string; it is coerced to
// int for comparison. Returns ErrProductNotFound on a miss and
// ErrInvalidProductID when the identifier cannot be coerced.
func (c *Catalog) GetByID(id any) (model.Product, error) {
	n, err := CoerceID(id)
	if err != nil {
		return model.Product{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[n]
	if !ok {
		return model.Product{}, shoperrors.ErrProductNotFound
	}
	return c.products[i], nil
}

// GetByCategory returns the products whose category equals the given
// string exactly (case-sensitive, no normalization), in catalog order.
// The result is a new slice; it is empty, not an error, when nothing
// matches.
func (c *Catalog) GetByCategory(category string) []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matches := make([]model.Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches
}

// Categories returns the distinct categories present in the catalog, in
// first-occurrence order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{}, len(c.products))
	categories := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// All returns a copy of the whole catalog in catalog order.
func (c *Catalog) All() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Page returns the 1-based nth page of the catalog and whether more pages
// follow. Out-of-range pages return an empty slice and false.
func (c *Catalog) Page(n int) ([]model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	size := c.itemsPerPage
	if size < 1 {
		size = len(c.products)
	}
	if n < 1 || size == 0 {
		return []model.Product{}, false
	}

	start := (n - 1) * size
	if start >= len(c.products) {
		return []model.Product{}, false
	}
	end := start + size
	if end > len(c.products) {
		end = len(c.products)
	}

	page := make([]model.Product, end-start)
	copy(page, c.products[start:end])
	return page, end < len(c.products)
}
