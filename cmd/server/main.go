// Package main is the entry point for the kanban pipeline service. It wires
// all dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
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

	adapthttp "github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/kanban-pipeline/internal/app"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/health"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	healthCheckTimeout    = 2 * time.Second
	identityPeer          = "identity-api"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*sqlite.Store](injector))
	if cfg.Identity.Mode == config.IdentityModeRemote {
		registry.Register(do.MustInvoke[*acl.IdentityClient](injector))
	}

	runErr := server.Run(ctx, serverShutdownTimeout)
	if runErr == nil {
		logger.Info("received shutdown signal")
	}

	// Close the store and anything else the container owns.
	if report := injector.Shutdown(); report != nil && !report.Succeed {
		logger.Error("container shutdown error", slog.String("report", report.Error()))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	if runErr != nil {
		return fmt.Errorf("server failed: %w", runErr)
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

// storeService adapts *sqlite.Store to do's shutdown hook so the container
// closes the database on exit.
type storeService struct {
	*sqlite.Store
}

// Shutdown implements do.ShutdownerWithError.
func (s storeService) Shutdown() error {
	return s.Close()
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (storeService, error) {
		st, err := sqlite.Open(ctx, cfg.Database.Path,
			sqlite.WithBusyTimeout(cfg.Database.BusyTimeout),
			sqlite.WithLogger(logger),
		)
		if err != nil {
			return storeService{}, fmt.Errorf("opening store: %w", err)
		}
		return storeService{Store: st}, nil
	})

	do.Provide(injector, func(i do.Injector) (*sqlite.Store, error) {
		return do.MustInvoke[storeService](i).Store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PipelineService, error) {
		st := do.MustInvoke[*sqlite.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewPipelineService(st, logger,
			app.WithMetrics(metrics),
			app.WithOverviewWorkers(cfg.Analytics.OverviewWorkers),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, identityPeer, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.IdentityClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewIdentityClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (middleware.PrincipalResolver, error) {
		if cfg.Identity.Mode == config.IdentityModeRemote {
			return middleware.NewRemoteResolver(do.MustInvoke[*acl.IdentityClient](i)), nil
		}
		return middleware.NewHeaderResolver(cfg.Identity.RoleHeader, cfg.Identity.ScopeHeader), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(healthCheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[ports.PipelineService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return adapthttp.Handlers{
			Board:   handlers.NewBoardHandler(svc),
			Lead:    handlers.NewLeadHandler(svc),
			Metrics: handlers.NewMetricsHandler(svc),
			Health:  handlers.NewHealthHandler(registry),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		resolver := do.MustInvoke[middleware.PrincipalResolver](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, resolver,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
