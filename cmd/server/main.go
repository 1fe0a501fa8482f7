// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/todo-service/internal/adapters/events/natsbus"
	"github.com/jsamuelsen11/todo-service/internal/adapters/storage/breaker"
	"github.com/jsamuelsen11/todo-service/internal/adapters/storage/gormstore"
	"github.com/jsamuelsen11/todo-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 10 * time.Second
)

// todoStore is a backing store: the repository port plus its own health
// check and connection lifecycle.
type todoStore interface {
	ports.TodoRepository
	ports.HealthChecker
	Close() error
}

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
	logger.Info("starting service",
		slog.String("name", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("profile", profile),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Bool("events_enabled", cfg.Events.Enabled),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[todoStore](injector)
	registry.Register(store)
	registry.Register(do.MustInvoke[*breaker.Repository](injector))

	publisher := do.MustInvoke[ports.EventPublisher](injector)
	bus, hasBus := publisher.(*natsbus.Publisher)
	if hasBus {
		registry.Register(bus)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

		// Graceful shutdown: drain HTTP requests.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}

		// Wait for Start() goroutine to return.
		<-serverErr
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	// Release the event bus and the store only after in-flight requests are done.
	if hasBus {
		if err := bus.Close(); err != nil {
			logger.Error("event bus close error", slog.Any("error", err))
		}
	}
	if err := store.Close(); err != nil {
		logger.Error("store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if runErr == nil {
		logger.Info("shutdown complete")
	}
	return runErr
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

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
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

// openStore opens the store selected by database.driver.
func openStore(cfg config.DatabaseConfig, logger *slog.Logger) (todoStore, error) {
	if cfg.Driver == memory.Driver {
		logger.Warn("using in-memory store; data is lost on restart")
		return memory.New(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	defer cancel()

	db, err := gormstore.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return gormstore.New(db), nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (todoStore, error) {
		store, err := openStore(cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("opening %s store: %w", cfg.Database.Driver, err)
		}
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (*breaker.Repository, error) {
		store := do.MustInvoke[todoStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return breaker.New(store, cfg.Storage.CircuitBreaker, cfg.Database.Driver, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.EventPublisher, error) {
		if !cfg.Events.Enabled {
			return natsbus.Discard{}, nil
		}
		pub, err := natsbus.Connect(cfg.Events, logger)
		if err != nil {
			return nil, fmt.Errorf("connecting event bus: %w", err)
		}
		return pub, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		repo := do.MustInvoke[*breaker.Repository](i)
		publisher := do.MustInvoke[ports.EventPublisher](i)
		return app.NewTodoService(repo, publisher, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, cfg.App.Version), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, healthH, middlewareStack(cfg, logger, metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// middlewareStack builds the request pipeline, outermost first. Rate limiting
// and the request timeout are omitted when configuration disables them.
func middlewareStack(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) func(nethttp.Handler) nethttp.Handler {
	var limit, timeout func(nethttp.Handler) nethttp.Handler
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limit = middleware.RateLimit(cfg.RateLimit)
	}
	if cfg.Server.RequestTimeout > 0 {
		timeout = middleware.Timeout(cfg.Server.RequestTimeout)
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.CORS(cfg.CORS),
		middleware.OpenTelemetry(metrics),
		middleware.Logging(logger),
		limit,
		timeout,
	)
}
