package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/middleware"

// unmatchedRoute labels requests that did not match any registered route, so
// that unknown paths do not explode metric cardinality.
const unmatchedRoute = "unmatched"

// OpenTelemetry returns middleware that creates a server span for each
// incoming request and records server request metrics. It extracts W3C Trace
// Context from incoming headers so that distributed traces are connected.
// Spans and metrics are labelled with the chi route pattern rather than the
// raw path.
//
// A nil tp uses the global TracerProvider. A nil metrics skips recording.
func OpenTelemetry(tp trace.TracerProvider, metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			provider := tp
			if provider == nil {
				provider = otel.GetTracerProvider()
			}

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := provider.Tracer(tracerName).Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(telemetry.AttrHTTPMethod.String(r.Method)),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route := routePattern(r)
			status := rw.statusCode
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, start, status)
		})
	}
}

// routePattern returns the matched chi route pattern. chi fills the pattern
// in while routing, so this must be read after the handler ran.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

// recordServerMetrics records server request duration and count metrics.
// Safe to call with nil metrics.
func recordServerMetrics(
	ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int,
) {
	if metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
	)

	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
