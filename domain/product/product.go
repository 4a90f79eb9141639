package product

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrAlreadyExists = errors.New("product already exists")
	ErrIDRequired    = errors.New("id is required")
	ErrNameRequired  = errors.New("name is required")
	ErrInvalidPrice  = errors.New("price must be greater than or equal to zero")
)

type Store interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
} // @name product.Product

func New(id, name string, price float64) (*Product, error) {
	p := &Product{ID: id, Name: name, Price: price}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	switch {
	case p.ID == "":
		return ErrIDRequired
	case p.Name == "":
		return ErrNameRequired
	case p.Price < 0:
		return ErrInvalidPrice
	}

	return nil
}

func (p *Product) WithDescription(description string) *Product {
	p.Description = description

	return p
}

func (p *Product) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	p.Name = name

	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	p.Price = price

	return nil
}

type Service interface {
	Create(ctx context.Context, name, description string, price float64) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}
