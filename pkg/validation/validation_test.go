package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/shoptheory/pkg/config"
	shoperrors "github.com/theory-cloud/shoptheory/pkg/errors"
	"github.com/theory-cloud/shoptheory/pkg/model"
)

// TestValidStatus tests the recognized-status check
func TestValidStatus(t *testing.T) {
	recognized := model.Statuses()

	for _, s := range recognized {
		assert.True(t, ValidStatus(recognized, s), "expected %s to be recognized", s)
	}
	assert.False(t, ValidStatus(recognized, "backordered"))
	assert.False(t, ValidStatus(nil, model.StatusPending))
}

// TestCanTransition tests the status flow table
func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{"pending to completed", model.StatusPending, model.StatusCompleted, true},
		{"completed to shipped", model.StatusCompleted, model.StatusShipped, true},
		{"shipped to delivered", model.StatusShipped, model.StatusDelivered, true},
		{"pending to shipped skips payment", model.StatusPending, model.StatusShipped, false},
		{"delivered back to pending", model.StatusDelivered, model.StatusPending, false},
		{"completed back to pending", model.StatusCompleted, model.StatusPending, false},
		{"pending to cancelled", model.StatusPending, model.StatusCancelled, true},
		{"shipped to cancelled", model.StatusShipped, model.StatusCancelled, true},
		{"delivered is terminal", model.StatusDelivered, model.StatusCancelled, false},
		{"cancelled is terminal", model.StatusCancelled, model.StatusPending, false},
		{"same status is allowed", model.StatusShipped, model.StatusShipped, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

// TestValidateQuantity tests the quantity cap check
func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(1, 100, true))
	assert.NoError(t, ValidateQuantity(100, 100, true))
	assert.NoError(t, ValidateQuantity(101, 100, false)) // cap declared, not enforced
	assert.NoError(t, ValidateQuantity(101, 0, true))    // no cap configured

	assert.ErrorIs(t, ValidateQuantity(101, 100, true), shoperrors.ErrQuantityLimitExceeded)
	assert.ErrorIs(t, ValidateQuantity(0, 100, false), shoperrors.ErrInvalidQuantity)
	assert.ErrorIs(t, ValidateQuantity(-1, 100, true), shoperrors.ErrInvalidQuantity)
}

// TestValidateProduct tests the product field range checks
func TestValidateProduct(t *testing.T) {
	valid := model.Product{
		ID:       1,
		Name:     "Widget",
		Category: "electronics",
		Price:    decimal.RequireFromString("9.99"),
		Rating:   decimal.RequireFromString("4.5"),
		Reviews:  12,
	}

	t.Run("Valid product passes", func(t *testing.T) {
		assert.NoError(t, ValidateProduct(nil, valid))
	})

	t.Run("Boundary ratings pass", func(t *testing.T) {
		p := valid
		p.Rating = decimal.Zero
		assert.NoError(t, ValidateProduct(nil, p))

		p.Rating = decimal.NewFromInt(5)
		assert.NoError(t, ValidateProduct(nil, p))
	})

	t.Run("Field violations fail", func(t *testing.T) {
		cases := map[string]func(*model.Product){
			"empty name":      func(p *model.Product) { p.Name = "  " },
			"empty category":  func(p *model.Product) { p.Category = "" },
			"negative price":  func(p *model.Product) { p.Price = decimal.RequireFromString("-0.01") },
			"negative review": func(p *model.Product) { p.Reviews = -1 },
			"rating too high": func(p *model.Product) { p.Rating = decimal.RequireFromString("5.1") },
			"rating too low":  func(p *model.Product) { p.Rating = decimal.RequireFromString("-0.1") },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				p := valid
				mutate(&p)
				assert.ErrorIs(t, ValidateProduct(nil, p), shoperrors.ErrInvalidProduct)
			})
		}
	})

	t.Run("Custom rating bounds are honored", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Products.MaxRating = decimal.NewFromInt(10)

		p := valid
		p.Rating = decimal.NewFromInt(8)
		assert.NoError(t, ValidateProduct(cfg, p))
	})
}

// TestValidateEmail tests the configured email pattern
func TestValidateEmail(t *testing.T) {
	t.Run("Accepts plausible addresses", func(t *testing.T) {
		assert.NoError(t, ValidateEmail(nil, "customer@example.com"))
		assert.NoError(t, ValidateEmail(nil, "a.b+tag@sub.domain.io"))
	})

	t.Run("Rejects malformed addresses", func(t *testing.T) {
		for _, bad := range []string{"", "plain", "no@tld", "spaces in@example.com", "@example.com"} {
			assert.ErrorIs(t, ValidateEmail(nil, bad), shoperrors.ErrInvalidEmail, "address %q", bad)
		}
	})

	t.Run("Empty pattern disables the check", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Validation.EmailPattern = ""

		assert.NoError(t, ValidateEmail(cfg, "anything"))
	})

	t.Run("Broken pattern surfaces an error", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Validation.EmailPattern = "("

		err := ValidateEmail(cfg, "customer@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email pattern")
	})
}
