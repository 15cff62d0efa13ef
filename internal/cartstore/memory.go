package cartstore

import (
	"context"
	"sync"

	"storefront/internal/models"
)

// MemoryStore keeps carts in process memory behind a single mutex. Carts
// are lost on restart and are not shared between instances.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]models.CartItem)}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneItems(s.carts[userID]), nil
}

func (s *MemoryStore) Increment(ctx context.Context, userID string, productID int64) ([]models.CartItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, found := incrementItem(s.carts[userID], productID)
	return cloneItems(items), found, nil
}

func (s *MemoryStore) Add(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := addItem(s.carts[userID], item)
	s.carts[userID] = items
	return cloneItems(items), nil
}

func (s *MemoryStore) Remove(ctx context.Context, userID string, productID int64) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[userID]
	if !ok {
		return []models.CartItem{}, nil
	}

	items, _ = removeItem(items, productID)
	s.carts[userID] = items
	return cloneItems(items), nil
}

func (s *MemoryStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
