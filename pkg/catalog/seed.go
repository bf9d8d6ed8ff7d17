package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/theory-cloud/shoptheory/pkg/model"
)

// SeedProducts returns the storefront's static product list.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Premium Wireless Headphones",
			Price:       decimal.RequireFromString("199.99"),
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			Rating:      decimal.RequireFromString("4.8"),
			Reviews:     245,
		},
		{
			ID:          2,
			Name:        "Ultra-Slim Laptop",
			Price:       decimal.RequireFromString("1299.99"),
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500&h=500&fit=crop",
			Description: "Lightweight laptop perfect for professionals with stunning display and powerful processor.",
			Rating:      decimal.RequireFromString("4.9"),
			Reviews:     189,
		},
		{
			ID:          3,
			Name:        "Smart Watch Pro",
			Price:       decimal.RequireFromString("349.99"),
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
			Description: "Advanced smartwatch with health tracking and seamless smartphone integration.",
			Rating:      decimal.RequireFromString("4.7"),
			Reviews:     156,
		},
		{
			ID:          4,
			Name:        "Premium Camera",
			Price:       decimal.RequireFromString("899.99"),
			Category:    "accessories",
			Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcREu4zWGDbxZjANc1pnoAjASEyRxEggie0ddg&s",
			Description: "Professional-grade digital camera with 4K video and exceptional low-light performance.",
			Rating:      decimal.RequireFromString("4.9"),
			Reviews:     234,
		},
		{
			ID:          5,
			Name:        "Portable Speaker",
			Price:       decimal.RequireFromString("129.99"),
			Category:    "accessories",
			Image:       "https://www.canex.ca/media/catalog/product/i/q/iq-wave-party-portable-bluetooth-speaker-black-ea1-059497279277_b-nznip.jpg?width=560&height=560&quality=80&bg-color=255,255,255&fit=bounds",
			Description: "Waterproof portable speaker with rich bass and 12-hour battery.",
			Rating:      decimal.RequireFromString("4.6"),
			Reviews:     312,
		},
		{
			ID:          6,
			Name:        "USB-C Hub Pro",
			Price:       decimal.RequireFromString("79.99"),
			Category:    "accessories",
			Image:       "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=500&h=500&fit=crop",
			Description: "Multi-port USB-C hub with Ethernet and 4K HDMI support.",
			Rating:      decimal.RequireFromString("4.5"),
			Reviews:     89,
		},
	}
}

// Default creates a catalog preloaded with the static seed list.
func Default(itemsPerPage int) *Catalog {
	return New(itemsPerPage, SeedProducts()...)
}
