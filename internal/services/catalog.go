package services

import (
	"context"

	"storefront/internal/models"
)

// CatalogService handles product lookups
type CatalogService struct {
	products ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(products ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// ListProducts returns the catalog, filtered by title when search is set
func (s *CatalogService) ListProducts(ctx context.Context, search string) ([]models.Product, error) {
	products, err := s.products.List(ctx, search)
	if err != nil {
		return nil, models.NewUpstreamError("Failed to load products", err)
	}
	return products, nil
}

// GetProduct returns one product or a not_found error
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if models.KindOf(err) == models.KindNotFound {
			return nil, err
		}
		return nil, models.NewUpstreamError("Failed to load product", err)
	}
	return product, nil
}
