package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/internal/models"
)

// MemoryProductRepository serves a fixed catalog from memory. The server
// falls back to it when no database is reachable.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int64]models.Product
}

// NewMemoryProductRepository creates a catalog holding products
func NewMemoryProductRepository(products []models.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{products: make(map[int64]models.Product, len(products))}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *MemoryProductRepository) List(ctx context.Context, search string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(search)
	products := []models.Product{}
	for _, p := range r.products {
		if needle == "" || strings.Contains(strings.ToLower(p.Title), needle) {
			products = append(products, p)
		}
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return &p, nil
}

func (r *MemoryProductRepository) UpsertMany(ctx context.Context, products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		r.products[p.ID] = p
	}
	return nil
}

// MemoryOrderRepository keeps orders in process memory
type MemoryOrderRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]time.Time
	orders map[int64]*models.Order
}

// NewMemoryOrderRepository creates an empty order store
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		nextID: 1,
		users:  make(map[string]time.Time),
		orders: make(map[int64]*models.Order),
	}
}

func (r *MemoryOrderRepository) PlaceOrder(ctx context.Context, userID string, items json.RawMessage) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.users[userID] = now

	id := r.nextID
	r.nextID++
	r.orders[id] = &models.Order{
		ID:        id,
		UserID:    userID,
		Items:     append(json.RawMessage(nil), items...),
		CreatedAt: now,
	}
	return id, nil
}

func (r *MemoryOrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

// HasUser reports whether userID has placed an order
func (r *MemoryOrderRepository) HasUser(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[userID]
	return ok
}
