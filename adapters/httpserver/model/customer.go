package model

import (
	"context"

	"github.com/ddd-patterns/backend/pkg/validation"
)

type AddressRequest struct {
	Street  string `json:"street" mod:"trim" validate:"required"`
	Number  int    `json:"number" validate:"required,gt=0"`
	City    string `json:"city" mod:"trim" validate:"required"`
	Zipcode string `json:"zipcode" mod:"trim" validate:"required"`
} // @name model.AddressRequest

type CreateCustomerRequest struct {
	Name    string          `json:"name" mod:"trim" validate:"required,max=255"`
	Address *AddressRequest `json:"address"`
} // @name model.CreateCustomerRequest

func (r *CreateCustomerRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ChangeAddressRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	AddressRequest
} // @name model.ChangeAddressRequest

func (r *ChangeAddressRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type CustomerIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *CustomerIDRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}
