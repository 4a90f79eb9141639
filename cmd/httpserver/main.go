package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ddd-patterns/backend/adapters/httpserver"
	"github.com/ddd-patterns/backend/pkg/app"
	"github.com/ddd-patterns/backend/pkg/config"
	"github.com/ddd-patterns/backend/pkg/logger"
	"github.com/ddd-patterns/backend/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

// @title Shop APIs
// @version 1.0

// @BasePath /api
// @schemes http https

// @description Customers, products and orders with synchronous domain events.
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

	// store adapters
	stores, err := app.OpenStores(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}
	defer stores.Close()

	// event bus
	dispatcher, err := app.NewDispatcher(cfg, applog, prometheus.DefaultRegisterer)
	if err != nil {
		applog.Fatal(err)
	}

	svc := app.NewServices(stores, dispatcher)

	server, err := httpserver.New(cfg, applog,
		httpserver.WithEventDispatcher(dispatcher),
		httpserver.WithGatherer(prometheus.DefaultGatherer),
		httpserver.WithCustomerService(svc.Customers),
		httpserver.WithProductService(svc.Products),
		httpserver.WithOrderService(svc.Orders),
	)
	if err != nil {
		applog.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		applog.Infow("server started!", "addr", addr, "store", cfg.Store, "dispatch_policy", cfg.Dispatch.Policy)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Errorf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		applog.Errorf("cannot shutdown server: %v", err)
	}
	applog.Info("server stopped")
}
