// Package cartstore keeps each user's pending cart lines.
//
// Every mutation is atomic per user: concurrent adds for the same product
// never produce duplicate lines or lost increments.
package cartstore

import (
	"context"
	"errors"

	"storefront/internal/models"
)

// Store is the cart persistence contract used by the cart and checkout services
type Store interface {
	// Get returns the user's lines in insertion order, or an empty slice
	Get(ctx context.Context, userID string) ([]models.CartItem, error)
	// Increment adds one to the quantity of productID. found is false, and
	// the cart untouched, when the product is not in the cart.
	Increment(ctx context.Context, userID string, productID int64) (items []models.CartItem, found bool, err error)
	// Add appends item with quantity 1, or increments the existing line if
	// the product was added in the meantime.
	Add(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error)
	// Remove drops productID from the cart; absent products are a no-op
	Remove(ctx context.Context, userID string, productID int64) ([]models.CartItem, error)
	// Clear deletes the whole cart
	Clear(ctx context.Context, userID string) error
}

// ErrConflict is returned when an optimistic update keeps losing races
var ErrConflict = errors.New("cart was modified concurrently, giving up")

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

func incrementItem(items []models.CartItem, productID int64) ([]models.CartItem, bool) {
	idx := models.FindItem(items, productID)
	if idx < 0 {
		return items, false
	}
	items[idx].Quantity++
	return items, true
}

func addItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	if next, found := incrementItem(items, item.ProductID); found {
		return next
	}
	item.Quantity = 1
	return append(items, item)
}

func removeItem(items []models.CartItem, productID int64) ([]models.CartItem, bool) {
	out := items[:0]
	removed := false
	for _, it := range items {
		if it.ProductID == productID {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}
