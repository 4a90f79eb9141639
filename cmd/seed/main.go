package main

import (
	"context"
	"log"

	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/pkg/app"
	"github.com/ddd-patterns/backend/pkg/config"
	"github.com/ddd-patterns/backend/pkg/logger"
	"github.com/ddd-patterns/backend/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
)

// seed creates a demo customer and catalogue through the services, so the
// listeners fire exactly as they do behind the HTTP API.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	stores, err := app.OpenStores(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}
	defer stores.Close()

	dispatcher, err := app.NewDispatcher(cfg, applog, prometheus.NewRegistry())
	if err != nil {
		applog.Fatal(err)
	}

	svc := app.NewServices(stores, dispatcher)
	ctx := context.Background()

	address, err := customer.NewAddress("Street 1", 123, "City 1", "13330-250")
	if err != nil {
		applog.Fatal(err)
	}

	c, err := svc.Customers.Create(ctx, "John Doe", &address)
	if err != nil {
		applog.Fatalf("cannot create customer: %v", err)
	}

	if _, err := svc.Customers.Activate(ctx, c.ID); err != nil {
		applog.Fatalf("cannot activate customer: %v", err)
	}

	catalogue := []struct {
		name, description string
		price             float64
	}{
		{"Keyboard", "Mechanical keyboard", 89.9},
		{"Mouse", "Wireless mouse", 25},
		{"Monitor", "27 inch monitor", 249.5},
	}

	for _, item := range catalogue {
		p, err := svc.Products.Create(ctx, item.name, item.description, item.price)
		if err != nil {
			applog.Fatalf("cannot create product %s: %v", item.name, err)
		}
		applog.Infof("product created: %s (%s)", p.Name, p.ID)
	}

	applog.Info("seed completed successfully")
	applog.Infof("customer: %s - id: %s", c.Name, c.ID)
}
