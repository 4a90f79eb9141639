package customer

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("customer not found")
	ErrAlreadyExists    = errors.New("customer already exists")
	ErrIDRequired       = errors.New("id is required")
	ErrNameRequired     = errors.New("name is required")
	ErrAddressMandatory = errors.New("address is mandatory to activate a customer")
)

type Store interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

type Customer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      *Address `json:"address,omitempty"`
	Active       bool     `json:"active"`
	RewardPoints int      `json:"reward_points"`
} // @name customer.Customer

func New(id, name string) (*Customer, error) {
	c := &Customer{ID: id, Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c.ID == "" {
		return ErrIDRequired
	}
	if c.Name == "" {
		return ErrNameRequired
	}

	return nil
}

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	c.Name = name

	return nil
}

func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.Address = &address

	return nil
}

func (c *Customer) Activate() error {
	if c.Address == nil {
		return ErrAddressMandatory
	}
	c.Active = true

	return nil
}

func (c *Customer) Deactivate() {
	c.Active = false
}

func (c *Customer) IsActive() bool {
	return c.Active
}

func (c *Customer) AddRewardPoints(points int) {
	c.RewardPoints += points
}

// Clone returns a deep copy, so stores and events never alias caller state.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}

	out := *c
	if c.Address != nil {
		a := *c.Address
		out.Address = &a
	}

	return &out
}

type Service interface {
	Create(ctx context.Context, name string, address *Address) (*Customer, error)
	ChangeAddress(ctx context.Context, id string, address Address) (*Customer, error)
	Activate(ctx context.Context, id string) (*Customer, error)
	Deactivate(ctx context.Context, id string) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
}
