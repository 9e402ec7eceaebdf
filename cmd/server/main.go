// Package main is the entry point for the orders service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
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
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-domain-primitives/events"
	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/clients/webhook"
	adapthttp "github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http"
	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/memory"
	"github.com/jsamuelsen11/go-domain-primitives/internal/app"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/config"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/health"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/logging"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
	"github.com/jsamuelsen11/go-domain-primitives/mediator"
)

const (
	otelShutdownTimeout = 5 * time.Second

	busBreakerName = "notification-bus"
	webhookPeer    = "order-webhook"
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
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel.tracerProvider())

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registerHealthCheckers(injector, cfg)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Drain in-flight requests within server.shutdown_timeout.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

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

// tracerProvider returns nil when tracing is disabled so that consumers fall
// back to the global no-op provider.
func (o *otelProviders) tracerProvider() trace.TracerProvider {
	if o.tracer == nil {
		return nil
	}
	return o.tracer
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

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, tp trace.TracerProvider) {
	registerEventing(injector, cfg, logger, tp)

	do.Provide(injector, func(_ do.Injector) (ports.OrderRepository, error) {
		return memory.NewOrderRepository(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrderService, error) {
		repo := do.MustInvoke[ports.OrderRepository](i)
		publisher := do.MustInvoke[events.Publisher](i)
		return app.NewOrderService(repo, publisher, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OrderHistory, error) {
		return do.MustInvoke[*app.Auditor](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.OrderHandler, error) {
		svc := do.MustInvoke[ports.OrderService](i)
		history := do.MustInvoke[ports.OrderHistory](i)
		return handlers.NewOrderHandler(svc, history), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StreamHandler, error) {
		feed := do.MustInvoke[*app.Feed](i)
		return handlers.NewStreamHandler(feed, cfg.Stream), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		orderH := do.MustInvoke[*handlers.OrderHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		streamH := do.MustInvoke[*handlers.StreamHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		mws := middleware.Stack(middleware.StackConfig{
			Logger:         logger,
			TracerProvider: tp,
			Metrics:        metrics,
			RequestTimeout: cfg.Server.RequestTimeout,
		})

		return adapthttp.NewRouter(orderH, healthH, streamH, mws...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerEventing wires the mediator with its subscribers, the decorated
// notification bus and the shared domain event publisher.
func registerEventing(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, tp trace.TracerProvider) {
	do.Provide(injector, func(_ do.Injector) (*app.Auditor, error) {
		return app.NewAuditor(logger, app.WithHistoryLimit(cfg.History.MaxEventsPerOrder)), nil
	})

	do.Provide(injector, func(_ do.Injector) (*app.Feed, error) {
		return app.NewFeed(cfg.Stream.BufferSize, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Webhook.Client, webhookPeer,
			httpclient.WithMetrics(metrics),
			httpclient.WithLogger(logger),
			httpclient.WithTracerProvider(tp),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*webhook.Forwarder, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return webhook.NewForwarder(client, cfg.Webhook.URL,
			webhook.WithBestEffort(cfg.Webhook.BestEffort),
			webhook.WithLogger(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*mediator.Mediator, error) {
		m := mediator.New(mediator.WithLogger(logger))
		// The forwarder goes first so that a rejected delivery stops dispatch
		// before the auditor and the feed record the event.
		if cfg.Webhook.Enabled {
			do.MustInvoke[*webhook.Forwarder](i).Subscribe(m)
		}
		do.MustInvoke[*app.Auditor](i).Subscribe(m)
		do.MustInvoke[*app.Feed](i).Subscribe(m)
		return m, nil
	})

	do.Provide(injector, func(i do.Injector) (events.NotificationBus, error) {
		var bus events.NotificationBus = do.MustInvoke[*mediator.Mediator](i)

		if rl := cfg.Mediator.RateLimit; rl.RequestsPerSecond > 0 {
			bus = mediator.NewThrottledBus(bus, rl.RequestsPerSecond, rl.BurstSize)
		}
		if cb := cfg.Mediator.CircuitBreaker; cb.Enabled {
			bus = mediator.NewBreakerBus(bus, mediator.BreakerSettings{
				Name:          busBreakerName,
				MaxFailures:   cb.MaxFailures,
				Timeout:       cb.Timeout,
				HalfOpenLimit: cb.HalfOpenLimit,
			}, logger)
		}
		return bus, nil
	})

	events.Register(injector, events.WithTracerProvider(tp))
}

// registerHealthCheckers adds the components that report readiness once the
// graph is wired.
func registerHealthCheckers(injector *do.RootScope, cfg *config.Config) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	if checker, ok := do.MustInvoke[events.NotificationBus](injector).(ports.HealthChecker); ok {
		registry.Register(checker)
	}
	if cfg.Webhook.Enabled {
		registry.Register(do.MustInvoke[*httpclient.Client](injector))
	}
}
