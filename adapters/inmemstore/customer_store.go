package inmemstore

import (
	"context"
	"sort"
	"sync"

	"github.com/ddd-patterns/backend/domain/customer"
)

type CustomerStore struct {
	mu        sync.RWMutex
	customers map[string]*customer.Customer
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{customers: make(map[string]*customer.Customer)}
}

func (s *CustomerStore) Create(_ context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[c.ID]; ok {
		return customer.ErrAlreadyExists
	}
	s.customers[c.ID] = c.Clone()

	return nil
}

func (s *CustomerStore) Update(_ context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[c.ID]; !ok {
		return customer.ErrNotFound
	}
	s.customers[c.ID] = c.Clone()

	return nil
}

func (s *CustomerStore) GetByID(_ context.Context, id string) (*customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return nil, customer.ErrNotFound
	}

	return c.Clone(), nil
}

func (s *CustomerStore) List(_ context.Context) ([]customer.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]customer.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, *c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
