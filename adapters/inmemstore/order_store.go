package inmemstore

import (
	"context"
	"sort"
	"sync"

	"github.com/ddd-patterns/backend/domain/checkout"
)

type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*checkout.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*checkout.Order)}
}

func (s *OrderStore) Create(_ context.Context, o *checkout.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; ok {
		return checkout.ErrAlreadyExists
	}
	s.orders[o.ID] = o.Clone()

	return nil
}

func (s *OrderStore) Update(_ context.Context, o *checkout.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; !ok {
		return checkout.ErrNotFound
	}
	s.orders[o.ID] = o.Clone()

	return nil
}

func (s *OrderStore) GetByID(_ context.Context, id string) (*checkout.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, checkout.ErrNotFound
	}

	return o.Clone(), nil
}

func (s *OrderStore) List(_ context.Context) ([]checkout.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]checkout.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
