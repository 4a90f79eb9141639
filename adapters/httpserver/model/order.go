package model

import (
	"context"

	"github.com/ddd-patterns/backend/domain/checkout"
	"github.com/ddd-patterns/backend/pkg/validation"
)

type OrderLineRequest struct {
	ProductID string `json:"product_id" mod:"trim" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
} // @name model.OrderLineRequest

type PlaceOrderRequest struct {
	CustomerID string             `json:"customer_id" mod:"trim" validate:"required"`
	Items      []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
} // @name model.PlaceOrderRequest

func (r *PlaceOrderRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

func (r *PlaceOrderRequest) Lines() []checkout.Line {
	lines := make([]checkout.Line, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, checkout.Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return lines
}

type AddOrderItemRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	OrderLineRequest
} // @name model.AddOrderItemRequest

func (r *AddOrderItemRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type OrderIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *OrderIDRequest) Validate(ctx context.Context) error {
	return validation.Struct(ctx, r)
}

type OrderResponse struct {
	*checkout.Order
	Total float64 `json:"total"`
} // @name model.OrderResponse

func NewOrderResponse(o *checkout.Order) OrderResponse {
	return OrderResponse{Order: o, Total: o.Total()}
}
