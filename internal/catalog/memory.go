package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/priyanshi012/studio/internal/domain"
)

// MemoryStore holds the catalog in memory. Products are immutable once
// loaded, so reads only take the lock to guard against a concurrent Load.
type MemoryStore struct {
	mu         sync.RWMutex
	products   []domain.Product
	byID       map[string]domain.Product
	categories []domain.Category
}

// NewMemoryStore creates a store seeded with the built-in demo catalog.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.Load(seedProducts, seedCategories)
	return s
}

// NewEmptyMemoryStore creates a store with no products, for callers that
// load the catalog from elsewhere (see Repository.LoadProducts).
func NewEmptyMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.Load(nil, nil)
	return s
}

// Load replaces the entire catalog.
func (s *MemoryStore) Load(products []domain.Product, categories []domain.Category) {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.byID = byID
	s.categories = categories
}

func (s *MemoryStore) List(_ context.Context, filter Filter) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.products))
	query := strings.ToLower(filter.Query)
	for _, p := range s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *MemoryStore) Categories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Category, len(s.categories))
	copy(result, s.categories)
	return result, nil
}
