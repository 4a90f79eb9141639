package checkout

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("order not found")
	ErrAlreadyExists      = errors.New("order already exists")
	ErrIDRequired         = errors.New("id is required")
	ErrCustomerIDRequired = errors.New("customer id is required")
	ErrItemsRequired      = errors.New("items are required")
)

type Store interface {
	Create(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
}

type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
} // @name checkout.Order

func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{
		ID:         id,
		CustomerID: customerID,
		Items:      append([]OrderItem(nil), items...),
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	switch {
	case o.ID == "":
		return ErrIDRequired
	case o.CustomerID == "":
		return ErrCustomerIDRequired
	case len(o.Items) == 0:
		return ErrItemsRequired
	}

	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (o *Order) AddItem(item OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.Items = append(o.Items, item)

	return nil
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Total()
	}

	return total
}

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	out := *o
	out.Items = append([]OrderItem(nil), o.Items...)

	return &out
}

// Line is a requested product and quantity; the service prices it.
type Line struct {
	ProductID string
	Quantity  int
}

type Service interface {
	PlaceOrder(ctx context.Context, customerID string, lines []Line) (*Order, error)
	AddItem(ctx context.Context, orderID string, line Line) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
}
