// Package httpclient provides the instrumented HTTP client used for outbound
// deliveries such as order event webhooks.
//
// Each call passes through, outermost first:
//
//	Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → Retry → HTTP
//
// Construction:
//
//	client := httpclient.New(&cfg.Webhook.Client, "order-webhook",
//		httpclient.WithMetrics(metrics),
//		httpclient.WithLogger(logger),
//	)
//
// Inbound middleware stores the request ID with WithRequestID so that
// deliveries triggered by a request carry the same X-Request-ID.
package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-domain-primitives/internal/breaker"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/config"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/telemetry"
)

const headerRequestID = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID returns a new context carrying the request ID that outbound
// requests forward in the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Option configures a Client.
type Option func(*Client)

// WithMetrics records request duration and count on m. A nil m disables
// metric recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the logger for breaker state changes and retry attempts.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracerProvider sets the provider for client spans. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer("httpclient")
		}
	}
}

// WithPropagator sets the propagator that writes trace context into outbound
// headers. Defaults to the global propagator.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *Client) {
		if p != nil {
			c.propagator = p
		}
	}
}

// Client is an instrumented HTTP client for a single peer. Safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	peer       string
	breaker    *gobreaker.CircuitBreaker[struct{}] // nil when disabled
	limiter    *rate.Limiter                       // nil when disabled
	retryCfg   retryConfig
	metrics    *telemetry.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// New creates a Client for the peer named peer. The name labels spans,
// metrics and the health check.
func New(cfg *config.ClientConfig, peer string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		peer:       peer,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.GetTracerProvider().Tracer("httpclient"),
		propagator: otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if cb := cfg.CircuitBreaker; cb.Enabled {
		c.breaker = breaker.New(breaker.Settings{
			Name:          peer,
			MaxFailures:   cb.MaxFailures,
			Timeout:       cb.Timeout,
			HalfOpenLimit: cb.HalfOpenLimit,
		}, c.logger)
	}

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	return c
}

// Do executes req through the pipeline.
//
// On a non-retryable status resp is non-nil and its body must be closed by
// the caller. When retries are exhausted on a retryable status both resp and
// err are non-nil. When the breaker rejects the call or the transport fails,
// resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	var resp *http.Response
	err := c.guard(func() error {
		if err := c.waitForRateLimit(ctx); err != nil {
			return err
		}

		c.injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)

		retryErr := c.doWithRetry(spanCtx, req, &resp)
		c.finishSpan(span, resp, retryErr)

		return retryErr
	})

	c.recordMetrics(ctx, method, start, resp, err)

	return resp, err
}

// guard runs fn under the circuit breaker when one is configured.
func (c *Client) guard(fn func() error) error {
	if c.breaker == nil {
		return fn()
	}
	return breaker.Run(c.breaker, fn)
}

// Name returns the peer name. With HealthCheck it satisfies
// ports.HealthChecker.
func (c *Client) Name() string {
	return c.peer
}

// HealthCheck reports the peer's availability from the breaker state without
// making a network call. A client without a breaker is always healthy.
func (c *Client) HealthCheck(_ context.Context) error {
	if c.breaker == nil {
		return nil
	}

	return breaker.Health(c.breaker)
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set(headerRequestID, id)
	}
}

// startSpan opens a client span and writes its trace context into the
// request headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", req.Method, c.peer),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.Redacted()),
			attribute.String("peer.service", c.peer),
		),
	)

	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so that rejected calls are counted.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest && err == nil {
			result = "success"
		}
	}
	if breaker.IsRejection(err) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
