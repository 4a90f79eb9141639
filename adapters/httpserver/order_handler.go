package httpserver

import (
	"github.com/ddd-patterns/backend/adapters/httpserver/model"
	"github.com/ddd-patterns/backend/domain/checkout"
	"github.com/ddd-patterns/backend/pkg/apperror"
	"github.com/ddd-patterns/backend/pkg/mycontext"
	"github.com/labstack/echo/v4"
)

// PlaceOrder godoc
// @Summary Place order
// @Description Price the requested lines from the catalogue and credit reward points
// @Tags order
// @Accept json
// @Produce json
// @Param payload body model.PlaceOrderRequest true "Place order request"
// @Success 201 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /orders [post]
func (s *Server) PlaceOrder(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.PlaceOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderService.PlaceOrder(ctx, req.CustomerID, req.Lines())
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.created(c, model.NewOrderResponse(order))
}

// AddOrderItem godoc
// @Summary Add order item
// @Tags order
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payload body model.OrderLineRequest true "Order line"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id}/items [post]
func (s *Server) AddOrderItem(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.AddOrderItemRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderService.AddItem(ctx, req.ID, checkout.Line{ProductID: req.ProductID, Quantity: req.Quantity})
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, model.NewOrderResponse(order))
}

// ListOrders godoc
// @Summary List orders
// @Tags order
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=[]model.OrderResponse}
// @Router /orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	var ctx = mycontext.NewEchoContextAdapter(c)

	orders, err := s.OrderService.List(ctx)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	resp := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, model.NewOrderResponse(&orders[i]))
	}

	return s.success(c, resp)
}

// GetOrder godoc
// @Summary Get order
// @Tags order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.OrderIDRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderService.GetByID(ctx, req.ID)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, model.NewOrderResponse(order))
}

func (s *Server) RegisterOrderRoutes(router *echo.Group) {
	router.POST("", s.PlaceOrder)
	router.GET("", s.ListOrders)
	router.GET("/:id", s.GetOrder)
	router.POST("/:id/items", s.AddOrderItem)
}
