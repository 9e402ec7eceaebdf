// Package logging builds the service logger and carries request-scoped
// loggers through context.
//
// The attribute helpers fix the keys shared by request logs, order service
// failures, event subscribers and webhook retries, so one order can be
// followed across all of them:
//
//	logger.ErrorContext(ctx, "failed to ship order",
//	    logging.Operation("ShipOrder"),
//	    logging.OrderID(id),
//	    logging.Err(err),
//	)
//
// Logging middleware stores a logger carrying request_id with WithLogger.
// Handlers that resolve an order add order_id to it with Enrich.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Attribute keys shared across layers.
const (
	KeyRequestID = "request_id"
	KeyOrderID   = "order_id"
	KeyOperation = "operation"
	KeyError     = "error"
)

// RequestID returns the request_id attribute.
func RequestID(id string) slog.Attr { return slog.String(KeyRequestID, id) }

// OrderID returns the order_id attribute.
func OrderID(id int) slog.Attr { return slog.Int(KeyOrderID, id) }

// Operation returns the operation attribute naming a service method.
func Operation(name string) slog.Attr { return slog.String(KeyOperation, name) }

// Err returns the error attribute. The full chain is kept so that wrapped
// causes reach the output.
func Err(err error) slog.Attr { return slog.Any(KeyError, err) }

type contextKey struct{}

// New creates the service logger writing to w. Sensitive attributes are
// redacted by every handler it builds.
//
// level is parsed by ParseLevel. format "text" selects slog's text handler;
// anything else selects JSON. Source locations are added at debug level and
// below.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	return slog.New(newHandler(format, w, opts))
}

func newHandler(format string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel reads a level name such as "debug" or "WARN" in slog's syntax.
// Unparseable values fall back to info.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// HasLogger reports whether ctx carries a logger stored by WithLogger.
func HasLogger(ctx context.Context) bool {
	_, ok := ctx.Value(contextKey{}).(*slog.Logger)
	return ok
}

// Enrich returns a copy of ctx whose logger also carries attrs.
func Enrich(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
