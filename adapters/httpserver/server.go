package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/ddd-patterns/backend/adapters/httpserver/model"
	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/checkout"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/domain/product"
	"github.com/ddd-patterns/backend/pkg/apperror"
	"github.com/ddd-patterns/backend/pkg/config"
	"github.com/ddd-patterns/backend/pkg/sentry"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// services
	CustomerService customer.Service
	ProductService  product.Service
	OrderService    checkout.Service

	// event bus
	EventDispatcher domain.EventDispatcher

	// metrics
	Gatherer prometheus.Gatherer
}

func WithCustomerService(svc customer.Service) Options {
	return func(s *Server) error {
		s.CustomerService = svc
		return nil
	}
}

func WithProductService(svc product.Service) Options {
	return func(s *Server) error {
		s.ProductService = svc
		return nil
	}
}

func WithOrderService(svc checkout.Service) Options {
	return func(s *Server) error {
		s.OrderService = svc
		return nil
	}
}

func WithEventDispatcher(d domain.EventDispatcher) Options {
	return func(s *Server) error {
		s.EventDispatcher = d
		return nil
	}
}

func WithGatherer(g prometheus.Gatherer) Options {
	return func(s *Server) error {
		s.Gatherer = g
		return nil
	}
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router:   echo.New(),
		Config:   cfg,
		Logger:   logger,
		Gatherer: prometheus.DefaultGatherer,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	if s.CustomerService == nil || s.ProductService == nil || s.OrderService == nil {
		return nil, errors.New("httpserver: customer, product and order services are required")
	}

	if s.EventDispatcher == nil {
		return nil, errors.New("httpserver: event dispatcher is required")
	}

	s.router.HideBanner = true
	s.router.HidePort = true

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))
	s.RegisterMetrics(s.router.Group(""))

	s.RegisterCustomerRoutes(s.router.Group("/api/customers"))
	s.RegisterProductRoutes(s.router.Group("/api/products"))
	s.RegisterOrderRoutes(s.router.Group("/api/orders"))
	s.RegisterEventRoutes(s.router.Group("/api/events"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestID())
	s.router.Use(s.requestLogger())
	s.router.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/metrics" },
	}))
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start serves on addr until Shutdown is called, then returns http.ErrServerClosed.
func (s *Server) Start(addr string) error {
	return s.router.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.router.Shutdown(ctx)
}

func (s *Server) ListenerAddr() net.Addr {
	return s.router.ListenerAddr()
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

func (s *Server) RegisterMetrics(router *echo.Group) {
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    "000000",
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

func (s *Server) success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, model.SuccessResponse{
		Message: "OK",
		Data:    data,
	})
}

func (s *Server) created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, model.SuccessResponse{
		Message: "Created",
		Data:    data,
	})
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
