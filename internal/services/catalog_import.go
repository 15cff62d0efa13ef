package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"storefront/internal/models"
)

// maxFeedBytes bounds the size of a remote catalog response
const maxFeedBytes = 10 << 20

// ProductWriter stores a batch of products, replacing rows with the same id
type ProductWriter interface {
	UpsertMany(ctx context.Context, products []models.Product) error
}

// CatalogImporter loads products from a remote JSON feed shaped like the
// FakeStore API: an array of {id, title, price, description, category,
// image, rating{rate, count}}.
type CatalogImporter struct {
	client *http.Client
	writer ProductWriter
}

// NewCatalogImporter creates an importer. A nil client uses http.DefaultClient.
func NewCatalogImporter(client *http.Client, writer ProductWriter) *CatalogImporter {
	if client == nil {
		client = http.DefaultClient
	}
	return &CatalogImporter{client: client, writer: writer}
}

// Fetch downloads and decodes the feed. Entries without an id or title are dropped.
func (i *CatalogImporter) Fetch(ctx context.Context, url string) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog feed returned status %d", resp.StatusCode)
	}

	var feed []models.Product
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFeedBytes)).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	products := make([]models.Product, 0, len(feed))
	for _, p := range feed {
		if p.ID <= 0 || strings.TrimSpace(p.Title) == "" {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Import fetches the feed and stores it, returning the number of products written
func (i *CatalogImporter) Import(ctx context.Context, url string) (int, error) {
	products, err := i.Fetch(ctx, url)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, nil
	}
	if err := i.writer.UpsertMany(ctx, products); err != nil {
		return 0, fmt.Errorf("failed to store catalog: %w", err)
	}
	return len(products), nil
}
