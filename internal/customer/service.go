package customer

import (
	"errors"
	"sync"

	"github.com/noah-isme/backend-kasir/internal/money"
)

// ErrNotFound indicates the addressed customer does not exist.
var ErrNotFound = errors.New("customer: not found")

// Service is the in-memory customer registry. Customers and their
// carts are single-owner objects with no internal synchronization, so
// the registry serializes all mutations of one customer behind a
// per-customer lock.
type Service struct {
	mu        sync.RWMutex
	customers map[string]*Customer
	locks     map[string]*sync.Mutex
}

// NewService returns an empty registry.
func NewService() *Service {
	return &Service{
		customers: make(map[string]*Customer),
		locks:     make(map[string]*sync.Mutex),
	}
}

// Create registers a new customer with an opening balance.
func (s *Service) Create(name string, balance money.Money) (*Customer, error) {
	c, err := New(name, balance)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.customers[c.ID()] = c
	s.locks[c.ID()] = &sync.Mutex{}
	s.mu.Unlock()
	return c, nil
}

// Get looks up a customer by id.
func (s *Service) Get(id string) (*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Do runs fn against the customer while holding that customer's
// mutation lock.
func (s *Service) Do(id string, fn func(*Customer) error) error {
	s.mu.RLock()
	c, ok := s.customers[id]
	lock := s.locks[id]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	lock.Lock()
	defer lock.Unlock()
	return fn(c)
}
