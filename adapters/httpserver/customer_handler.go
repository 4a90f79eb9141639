package httpserver

import (
	"context"

	"github.com/ddd-patterns/backend/adapters/httpserver/model"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/pkg/apperror"
	"github.com/ddd-patterns/backend/pkg/mycontext"
	"github.com/labstack/echo/v4"
)

// CreateCustomer godoc
// @Summary Create customer
// @Description Create a customer, optionally with an address, and publish CustomerCreatedEvent
// @Tags customer
// @Accept json
// @Produce json
// @Param payload body model.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	var address *customer.Address
	if req.Address != nil {
		a, err := customer.NewAddress(req.Address.Street, req.Address.Number, req.Address.City, req.Address.Zipcode)
		if err != nil {
			return s.error(c, toAppError(err))
		}
		address = &a
	}

	cust, err := s.CustomerService.Create(ctx, req.Name, address)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.created(c, cust)
}

// ListCustomers godoc
// @Summary List customers
// @Tags customer
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=[]customer.Customer}
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	var ctx = mycontext.NewEchoContextAdapter(c)

	customers, err := s.CustomerService.List(ctx)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, customers)
}

// GetCustomer godoc
// @Summary Get customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.CustomerIDRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := s.CustomerService.GetByID(ctx, req.ID)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, cust)
}

// ChangeCustomerAddress godoc
// @Summary Change customer address
// @Description Replace the address and publish CustomerAddressChangedEvent
// @Tags customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payload body model.AddressRequest true "New address"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers/{id}/address [put]
func (s *Server) ChangeCustomerAddress(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.ChangeAddressRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	address, err := customer.NewAddress(req.Street, req.Number, req.City, req.Zipcode)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	cust, err := s.CustomerService.ChangeAddress(ctx, req.ID, address)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, cust)
}

// ActivateCustomer godoc
// @Summary Activate customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 404 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /customers/{id}/activate [post]
func (s *Server) ActivateCustomer(c echo.Context) error {
	return s.toggleCustomer(c, s.CustomerService.Activate)
}

// DeactivateCustomer godoc
// @Summary Deactivate customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=customer.Customer}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/deactivate [post]
func (s *Server) DeactivateCustomer(c echo.Context) error {
	return s.toggleCustomer(c, s.CustomerService.Deactivate)
}

func (s *Server) toggleCustomer(c echo.Context, fn func(ctx context.Context, id string) (*customer.Customer, error)) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.CustomerIDRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	cust, err := fn(ctx, req.ID)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, cust)
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.POST("", s.CreateCustomer)
	router.GET("", s.ListCustomers)
	router.GET("/:id", s.GetCustomer)
	router.PUT("/:id/address", s.ChangeCustomerAddress)
	router.POST("/:id/activate", s.ActivateCustomer)
	router.POST("/:id/deactivate", s.DeactivateCustomer)
}
