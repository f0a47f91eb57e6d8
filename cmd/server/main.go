// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/forgeline/heavyshop/internal/adapters/http"
	"github.com/forgeline/heavyshop/internal/adapters/http/handlers"
	"github.com/forgeline/heavyshop/internal/adapters/http/middleware"

	"github.com/forgeline/heavyshop/internal/adapters/clients/purchasing"
	"github.com/forgeline/heavyshop/internal/adapters/storage/sqlite"
	"github.com/forgeline/heavyshop/internal/app"
	"github.com/forgeline/heavyshop/internal/app/uow"
	"github.com/forgeline/heavyshop/internal/platform/config"
	"github.com/forgeline/heavyshop/internal/platform/health"
	"github.com/forgeline/heavyshop/internal/platform/httpclient"
	"github.com/forgeline/heavyshop/internal/platform/logging"
	"github.com/forgeline/heavyshop/internal/platform/telemetry"
	"github.com/forgeline/heavyshop/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	db, err := sqlite.Open(sqlite.Config{
		Path:          cfg.Database.Path,
		BusyTimeoutMS: cfg.Database.BusyTimeoutMS,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, db)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(sqlite.NewHealthChecker(db))
	registry.Register(do.MustInvoke[*purchasing.Client](injector))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Storage.
	do.Provide(injector, func(i do.Injector) (ports.InventoryRepository, error) {
		return sqlite.NewInventoryRepo(do.MustInvoke[*sql.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.WorkOrderRepository, error) {
		return sqlite.NewWorkOrderRepo(do.MustInvoke[*sql.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.PartRepository, error) {
		return sqlite.NewPartRepo(do.MustInvoke[*sql.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TechnicianRepository, error) {
		return sqlite.NewTechnicianRepo(do.MustInvoke[*sql.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.AggregateStore, error) {
		return sqlite.NewStore(do.MustInvoke[*sql.DB](i)), nil
	})

	// Outbound purchasing client.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Purchasing, "purchasing", metrics, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (*purchasing.Client, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return purchasing.NewClient(client, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.PurchasingGateway, error) {
		return do.MustInvoke[*purchasing.Client](i), nil
	})

	// Unit of work: dispatcher plus per-operation factory. Subscribers are
	// attached once, after the repositories they need are resolvable.
	do.Provide(injector, func(_ do.Injector) (ports.EventDispatcher, error) {
		return uow.NewDispatcher(logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.UnitOfWorkFactory, error) {
		dispatcher := do.MustInvoke[ports.EventDispatcher](i)
		factory := uow.Factory{
			Store:      do.MustInvoke[ports.AggregateStore](i),
			Dispatcher: dispatcher,
			Logger:     logger,
		}

		lowStock := app.NewLowStockReorderSubscriber(
			do.MustInvoke[ports.PurchasingGateway](i), logger)
		partsIssued := app.NewPartsIssuedSubscriber(
			do.MustInvoke[ports.WorkOrderRepository](i), factory, logger)
		app.RegisterSubscribers(dispatcher, lowStock, partsIssued)

		return factory, nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.InventoryService, error) {
		return app.NewInventoryService(
			do.MustInvoke[ports.InventoryRepository](i),
			do.MustInvoke[ports.UnitOfWorkFactory](i),
			logger,
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.WorkOrderService, error) {
		return app.NewWorkOrderService(
			do.MustInvoke[ports.WorkOrderRepository](i),
			do.MustInvoke[ports.InventoryRepository](i),
			do.MustInvoke[ports.TechnicianRepository](i),
			do.MustInvoke[ports.UnitOfWorkFactory](i),
			logger,
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.PartService, error) {
		return app.NewPartService(do.MustInvoke[ports.PartRepository](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TechnicianService, error) {
		return app.NewTechnicianService(do.MustInvoke[ports.TechnicianRepository](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP handlers.
	do.Provide(injector, func(i do.Injector) (*handlers.InventoryHandler, error) {
		return handlers.NewInventoryHandler(do.MustInvoke[ports.InventoryService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.WorkOrderHandler, error) {
		return handlers.NewWorkOrderHandler(do.MustInvoke[ports.WorkOrderService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.PartHandler, error) {
		return handlers.NewPartHandler(do.MustInvoke[ports.PartService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.TechnicianHandler, error) {
		return handlers.NewTechnicianHandler(do.MustInvoke[ports.TechnicianService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.InventoryHandler](i),
			do.MustInvoke[*handlers.WorkOrderHandler](i),
			do.MustInvoke[*handlers.PartHandler](i),
			do.MustInvoke[*handlers.TechnicianHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
