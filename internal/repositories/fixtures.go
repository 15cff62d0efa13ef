package repositories

import (
	"storefront/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultProducts is the built-in catalog used by demo mode and the seed command
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Title:       "Wireless Headphones",
			Price:       decimal.RequireFromString("99.99"),
			Description: "High-quality wireless headphones with noise cancellation",
			Category:    "electronics",
			Image:       "/static/images/headphones.jpg",
			Rating:      models.Rating{Rate: 4.5, Count: 120},
		},
		{
			ID:          2,
			Title:       "Smart Watch",
			Price:       decimal.RequireFromString("199.99"),
			Description: "Feature-packed smartwatch with health monitoring",
			Category:    "electronics",
			Image:       "/static/images/smartwatch.jpg",
			Rating:      models.Rating{Rate: 4.2, Count: 85},
		},
		{
			ID:          3,
			Title:       "Bluetooth Speaker",
			Price:       decimal.RequireFromString("79.99"),
			Description: "Portable speaker with 20-hour battery life",
			Category:    "electronics",
			Image:       "/static/images/speaker.jpg",
			Rating:      models.Rating{Rate: 4.7, Count: 203},
		},
		{
			ID:          4,
			Title:       "Laptop Backpack",
			Price:       decimal.RequireFromString("49.99"),
			Description: "Durable backpack with USB charging port",
			Category:    "accessories",
			Image:       "/static/images/backpack.jpg",
			Rating:      models.Rating{Rate: 3.9, Count: 41},
		},
	}
}
