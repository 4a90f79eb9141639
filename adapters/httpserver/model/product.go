package model

import (
	"context"

	"github.com/ddd-patterns/backend/pkg/validation"
)

type CreateProductRequest struct {
	Name        string  `json:"name" mod:"trim" validate:"required,max=255"`
	Description string  `json:"description" mod:"trim" validate:"max=1024"`
	Price       float64 `json:"price" validate:"gte=0"`
} // @name model.CreateProductRequest

func (r *CreateProductRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type ProductIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *ProductIDRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}
