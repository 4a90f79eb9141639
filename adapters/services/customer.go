package services

import (
	"context"
	"fmt"

	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/customer"
)

type CustomerService struct {
	store      customer.Store
	dispatcher domain.EventDispatcher
}

func NewCustomerService(store customer.Store, dispatcher domain.EventDispatcher) *CustomerService {
	return &CustomerService{store: store, dispatcher: dispatcher}
}

func (s *CustomerService) Create(ctx context.Context, name string, address *customer.Address) (*customer.Customer, error) {
	var (
		c   *customer.Customer
		err error
	)

	if address != nil {
		c, err = customer.CreateWithAddress(name, *address)
	} else {
		c, err = customer.Create(name)
	}
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(ctx, customer.NewCustomerCreatedEvent(c)); err != nil {
		return c, fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	return c, nil
}

func (s *CustomerService) ChangeAddress(ctx context.Context, id string, address customer.Address) (*customer.Customer, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.ChangeAddress(address); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(ctx, customer.NewCustomerAddressChangedEvent(c)); err != nil {
		return c, fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	return c, nil
}

func (s *CustomerService) Activate(ctx context.Context, id string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.Activate()
	})
}

func (s *CustomerService) Deactivate(ctx context.Context, id string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		c.Deactivate()
		return nil
	})
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	return s.store.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]customer.Customer, error) {
	return s.store.List(ctx)
}

func (s *CustomerService) mutate(ctx context.Context, id string, fn func(c *customer.Customer) error) (*customer.Customer, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
