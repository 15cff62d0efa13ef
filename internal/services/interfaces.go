package services

import (
	"context"
	"encoding/json"

	"storefront/internal/models"
)

// ProductRepository is the catalog read path
type ProductRepository interface {
	List(ctx context.Context, search string) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// OrderRepository persists a checkout. PlaceOrder records the user and the
// order together and returns the generated order id.
type OrderRepository interface {
	PlaceOrder(ctx context.Context, userID string, items json.RawMessage) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
}

// CatalogServiceInterface defines the interface for catalog services
type CatalogServiceInterface interface {
	ListProducts(ctx context.Context, search string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// CartServiceInterface defines the interface for cart services
type CartServiceInterface interface {
	GetCart(ctx context.Context, userID string) ([]models.CartItem, error)
	AddItem(ctx context.Context, req *models.CartItemRequest) ([]models.CartItem, error)
	RemoveItem(ctx context.Context, req *models.CartItemRequest) ([]models.CartItem, error)
}

// CheckoutServiceInterface defines the interface for checkout services
type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*CheckoutResult, error)
	GetOrder(ctx context.Context, userID string, id int64) (*models.Order, error)
}
