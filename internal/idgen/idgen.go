// Package idgen generates collision-resistant identifiers for cart items and orders.
//
// Identifiers must stay unique even under rapid successive calls, such as
// re-adding the same product within one millisecond, so they carry a random
// UUID rather than a timestamp. Callers treat them as opaque strings.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Func produces one identifier per call. Stores accept a Func so tests can
// substitute a deterministic sequence.
type Func func() string

// CartItemID returns a unique cart line-item id for the given product.
// The product id prefix is informational only; uniqueness comes from the
// UUID suffix.
func CartItemID(productID int) string {
	return fmt.Sprintf("%d-%s", productID, uuid.NewString())
}

// OrderID returns a unique order id with the configured prefix, e.g.
// "ORD-9f1c...".
func OrderID(prefix string) string {
	return prefix + uuid.NewString()
}

// Sequence returns a Func that yields prefix0, prefix1, ... for
// deterministic tests.
func Sequence(prefix string) Func {
	n := 0
	return func() string {
		id := fmt.Sprintf("%s%d", prefix, n)
		n++
		return id
	}
}
