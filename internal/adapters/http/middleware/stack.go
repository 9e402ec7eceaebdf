package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/telemetry"
)

// StackConfig holds what the inbound middleware stack needs from the host.
type StackConfig struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider // nil uses the global provider
	Metrics        *telemetry.Metrics   // nil skips recording
	// RequestTimeout bounds handler execution. Zero leaves it unbounded.
	RequestTimeout time.Duration
}

// Stack returns the service middleware, outermost first:
//
//	RequestID → Recovery → OpenTelemetry → Logging → Timeout
//
// RequestID runs first so that panics, spans and logs all see the ID.
// Timeout is innermost so the deadline covers only the handler and the
// event dispatch it triggers.
func Stack(cfg StackConfig) []func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	mws := []func(http.Handler) http.Handler{
		RequestID(),
		Recovery(logger),
		OpenTelemetry(cfg.TracerProvider, cfg.Metrics),
		Logging(logger),
	}
	if cfg.RequestTimeout > 0 {
		mws = append(mws, Timeout(cfg.RequestTimeout))
	}
	return mws
}
