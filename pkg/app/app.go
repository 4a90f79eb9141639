// Package app assembles the stores, dispatcher and services shared by the
// binaries under cmd/.
package app

import (
	"fmt"

	"github.com/ddd-patterns/backend/adapters/event"
	"github.com/ddd-patterns/backend/adapters/event/listeners"
	"github.com/ddd-patterns/backend/adapters/inmemstore"
	"github.com/ddd-patterns/backend/adapters/notificationhub"
	"github.com/ddd-patterns/backend/adapters/postgrestore"
	"github.com/ddd-patterns/backend/adapters/services"
	"github.com/ddd-patterns/backend/domain"
	"github.com/ddd-patterns/backend/domain/checkout"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/domain/product"
	"github.com/ddd-patterns/backend/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Stores struct {
	Customers customer.Store
	Products  product.Store
	Orders    checkout.Store

	closers []func() error
}

func (s *Stores) Close() error {
	var err error
	for _, fn := range s.closers {
		err = multierr.Append(err, fn())
	}

	return err
}

// OpenStores returns the stores selected by cfg.Store, running migrations
// first when the postgres backend is enabled with DB_MIGRATE.
func OpenStores(cfg *config.Config, logger *zap.SugaredLogger) (*Stores, error) {
	if cfg.Store == config.StoreMemory {
		logger.Info("using in-memory stores")

		return &Stores{
			Customers: inmemstore.NewCustomerStore(),
			Products:  inmemstore.NewProductStore(),
			Orders:    inmemstore.NewOrderStore(),
		}, nil
	}

	opts := postgrestore.ParseFromConfig(cfg)

	sqlxDB, err := postgrestore.NewSQLXConnection(opts)
	if err != nil {
		return nil, err
	}

	if cfg.DB.Migrate {
		n, err := postgrestore.Migrate(sqlxDB.DB)
		if err != nil {
			_ = sqlxDB.Close()
			return nil, err
		}
		logger.Infof("applied %d migrations", n)
	}

	gormDB, err := postgrestore.NewConnection(opts)
	if err != nil {
		_ = sqlxDB.Close()
		return nil, err
	}

	gormSQL, err := gormDB.DB()
	if err != nil {
		_ = sqlxDB.Close()
		return nil, fmt.Errorf("cannot get gorm sql.DB: %w", err)
	}

	return &Stores{
		Customers: postgrestore.NewCustomerStore(gormDB),
		Products:  postgrestore.NewProductStore(sqlxDB),
		Orders:    postgrestore.NewOrderStore(gormDB),
		closers:   []func() error{sqlxDB.Close, gormSQL.Close},
	}, nil
}

// NewDispatcher builds the event bus with the configured delivery policy and
// subscribes the application listeners.
func NewDispatcher(cfg *config.Config, logger *zap.SugaredLogger, reg prometheus.Registerer) (domain.EventDispatcher, error) {
	policy, err := event.ParsePolicy(cfg.Dispatch.Policy)
	if err != nil {
		return nil, err
	}

	d, err := event.NewEventDispatcher(
		event.WithPolicy(policy),
		event.WithLogger(logger),
		event.WithMetrics(reg),
		event.WithTracer(otel.GetTracerProvider()),
	)
	if err != nil {
		return nil, err
	}

	listeners.RegisterAll(d, listeners.Options{
		Logger:         logger,
		Mailer:         notificationhub.NewNotificationHub(cfg.Notification.From, logger),
		EmailRecipient: cfg.Notification.Recipient,
	})

	return d, nil
}

type Services struct {
	Customers *services.CustomerService
	Products  *services.ProductService
	Orders    *services.OrderService
}

func NewServices(stores *Stores, d domain.EventDispatcher) *Services {
	return &Services{
		Customers: services.NewCustomerService(stores.Customers, d),
		Products:  services.NewProductService(stores.Products, d),
		Orders:    services.NewOrderService(stores.Orders, stores.Customers, stores.Products),
	}
}
