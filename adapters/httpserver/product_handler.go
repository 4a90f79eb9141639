package httpserver

import (
	"github.com/ddd-patterns/backend/adapters/httpserver/model"
	"github.com/ddd-patterns/backend/pkg/apperror"
	"github.com/ddd-patterns/backend/pkg/mycontext"
	"github.com/labstack/echo/v4"
)

// CreateProduct godoc
// @Summary Create product
// @Description Create a product and publish ProductCreatedEvent
// @Tags product
// @Accept json
// @Produce json
// @Param payload body model.CreateProductRequest true "Create product request"
// @Success 201 {object} model.SuccessResponse{data=product.Product}
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /products [post]
func (s *Server) CreateProduct(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.CreateProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	p, err := s.ProductService.Create(ctx, req.Name, req.Description, req.Price)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.created(c, p)
}

// ListProducts godoc
// @Summary List products
// @Tags product
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=[]product.Product}
// @Router /products [get]
func (s *Server) ListProducts(c echo.Context) error {
	var ctx = mycontext.NewEchoContextAdapter(c)

	products, err := s.ProductService.List(ctx)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, products)
}

// GetProduct godoc
// @Summary Get product
// @Tags product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.SuccessResponse{data=product.Product}
// @Failure 404 {object} model.ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProduct(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.ProductIDRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	p, err := s.ProductService.GetByID(ctx, req.ID)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, p)
}

func (s *Server) RegisterProductRoutes(router *echo.Group) {
	router.POST("", s.CreateProduct)
	router.GET("", s.ListProducts)
	router.GET("/:id", s.GetProduct)
}
