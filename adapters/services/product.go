package services

import (
	"context"
	"fmt"

	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/product"
	"github.com/google/uuid"
)

type ProductService struct {
	store      product.Store
	dispatcher domain.EventDispatcher
}

func NewProductService(store product.Store, dispatcher domain.EventDispatcher) *ProductService {
	return &ProductService{store: store, dispatcher: dispatcher}
}

func (s *ProductService) Create(ctx context.Context, name, description string, price float64) (*product.Product, error) {
	p, err := product.New(uuid.NewString(), name, price)
	if err != nil {
		return nil, err
	}
	p.WithDescription(description)

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(ctx, product.NewProductCreatedEvent(p)); err != nil {
		return p, fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	return p, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*product.Product, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]product.Product, error) {
	return s.store.List(ctx)
}
