package catalog

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound indicates the requested product is not in the catalog.
var ErrNotFound = errors.New("catalog: product not found")

// Store is an in-memory product registry. Catalog entries are never
// deleted; stock changes flow through the product's own quantity
// methods. Store-level locking serializes those mutations when
// requests run in parallel.
type Store struct {
	mu       sync.RWMutex
	products map[ProductID]*Product
	order    []ProductID
}

// NewStore returns an empty catalog.
func NewStore() *Store {
	return &Store{products: make(map[ProductID]*Product)}
}

// Add registers a product. Re-adding an existing id fails.
func (s *Store) Add(p *Product) error {
	if p == nil {
		return fmt.Errorf("product cannot be nil: %w", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.products[p.ID()]; exists {
		return fmt.Errorf("product %s already registered: %w", p.ID(), ErrInvalidInput)
	}
	s.products[p.ID()] = p
	s.order = append(s.order, p.ID())
	return nil
}

// Get looks up a product by id.
func (s *Store) Get(id ProductID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns all products in registration order.
func (s *Store) List() []*Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.products[id])
	}
	return out
}

// Lock acquires the store's write lock for a multi-product mutation
// such as the checkout inventory commit.
func (s *Store) Lock() { s.mu.Lock() }

// Unlock releases the write lock.
func (s *Store) Unlock() { s.mu.Unlock() }
