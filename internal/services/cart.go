package services

import (
	"context"

	"storefront/internal/cartstore"
	"storefront/internal/models"
)

// CartService handles cart reads and mutations
type CartService struct {
	store    cartstore.Store
	products ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(store cartstore.Store, products ProductRepository) *CartService {
	return &CartService{
		store:    store,
		products: products,
	}
}

// GetCart returns the user's cart, empty for users never seen before
func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	if userID == "" {
		return nil, models.ErrMissingUserID
	}

	items, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, models.NewUpstreamError("Failed to load cart", err)
	}
	return items, nil
}

// AddItem adds one unit of the product. A product already in the cart only
// has its quantity bumped; otherwise the product is looked up and a new line
// with quantity 1 is appended.
func (s *CartService) AddItem(ctx context.Context, req *models.CartItemRequest) ([]models.CartItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items, found, err := s.store.Increment(ctx, req.UserID, req.ProductID)
	if err != nil {
		return nil, models.NewUpstreamError("Failed to update cart", err)
	}
	if found {
		return items, nil
	}

	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		if models.KindOf(err) == models.KindNotFound {
			return nil, err
		}
		return nil, models.NewUpstreamError("Failed to fetch product", err)
	}

	items, err = s.store.Add(ctx, req.UserID, product.CartItem())
	if err != nil {
		return nil, models.NewUpstreamError("Failed to update cart", err)
	}
	return items, nil
}

// RemoveItem drops the product from the cart. Removing a product that is
// not there succeeds and returns the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, req *models.CartItemRequest) ([]models.CartItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items, err := s.store.Remove(ctx, req.UserID, req.ProductID)
	if err != nil {
		return nil, models.NewUpstreamError("Failed to update cart", err)
	}
	return items, nil
}
