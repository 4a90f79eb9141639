package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ddd-patterns/backend/domain/checkout"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/domain/product"
	"github.com/google/uuid"
)

type OrderService struct {
	orderStore    checkout.Store
	customerStore customer.Store
	productStore  product.Store
}

func NewOrderService(orderStore checkout.Store, customerStore customer.Store, productStore product.Store) *OrderService {
	return &OrderService{
		orderStore:    orderStore,
		customerStore: customerStore,
		productStore:  productStore,
	}
}

var ErrRewardNotCredited = errors.New("reward points not credited")

// PlaceOrder prices every line from the product catalogue, stores the order
// and credits the customer one reward point per whole unit of the total.
// When crediting fails the stored order is returned with ErrRewardNotCredited.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID string, lines []checkout.Line) (*checkout.Order, error) {
	c, err := s.customerStore.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]checkout.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, err := s.price(ctx, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order, err := checkout.NewOrder(uuid.NewString(), c.ID, items)
	if err != nil {
		return nil, err
	}

	if err := s.orderStore.Create(ctx, order); err != nil {
		return nil, err
	}

	c.AddRewardPoints(int(math.Floor(order.Total())))
	if err := s.customerStore.Update(ctx, c); err != nil {
		return order, fmt.Errorf("%w: %w", ErrRewardNotCredited, err)
	}

	return order, nil
}

func (s *OrderService) AddItem(ctx context.Context, orderID string, line checkout.Line) (*checkout.Order, error) {
	order, err := s.orderStore.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	item, err := s.price(ctx, line)
	if err != nil {
		return nil, err
	}

	if err := order.AddItem(item); err != nil {
		return nil, err
	}

	if err := s.orderStore.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*checkout.Order, error) {
	return s.orderStore.GetByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]checkout.Order, error) {
	return s.orderStore.List(ctx)
}

func (s *OrderService) price(ctx context.Context, line checkout.Line) (checkout.OrderItem, error) {
	p, err := s.productStore.GetByID(ctx, line.ProductID)
	if err != nil {
		return checkout.OrderItem{}, err
	}

	return checkout.NewOrderItem(uuid.NewString(), p.Name, p.Price, p.ID, line.Quantity)
}
