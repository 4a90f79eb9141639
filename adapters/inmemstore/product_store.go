package inmemstore

import (
	"context"
	"sort"
	"sync"

	"github.com/ddd-patterns/backend/domain/product"
)

type ProductStore struct {
	mu       sync.RWMutex
	products map[string]product.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[string]product.Product)}
}

func (s *ProductStore) Create(_ context.Context, p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; ok {
		return product.ErrAlreadyExists
	}
	s.products[p.ID] = *p

	return nil
}

func (s *ProductStore) Update(_ context.Context, p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return product.ErrNotFound
	}
	s.products[p.ID] = *p

	return nil
}

func (s *ProductStore) GetByID(_ context.Context, id string) (*product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}

	return &p, nil
}

func (s *ProductStore) List(_ context.Context) ([]product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
