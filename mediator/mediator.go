package mediator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/events"
)

// ErrNilNotification is returned when Publish is called with a nil message.
var ErrNilNotification = errors.New("nil notification")

// Compile-time interface check.
var _ events.NotificationBus = (*Mediator)(nil)

// HandlerFunc handles a single notification.
type HandlerFunc func(ctx context.Context, notification domain.NotificationMessage) error

type subscription struct {
	typ     reflect.Type
	handler HandlerFunc
}

// matches reports whether a notification of concrete type t is routed to s.
// Interface subscriptions match every type implementing the interface.
func (s subscription) matches(t reflect.Type) bool {
	if s.typ.Kind() == reflect.Interface {
		return t.Implements(s.typ)
	}
	return t == s.typ
}

// Option configures a Mediator.
type Option func(*Mediator)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mediator) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Mediator is an in-process NotificationBus. Registration and publishing are
// safe for concurrent use.
type Mediator struct {
	mu       sync.RWMutex
	typed    []subscription
	catchAll []HandlerFunc
	logger   *slog.Logger
}

// New creates a Mediator without handlers.
func New(opts ...Option) *Mediator {
	m := &Mediator{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers handler for notifications of type T. When T is a
// concrete type only that exact type is routed to handler; when T is an
// interface every implementing type is. Handlers for the same notification
// run in registration order.
func Subscribe[T domain.NotificationMessage](m *Mediator, handler func(ctx context.Context, notification T) error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.typed = append(m.typed, subscription{
		typ: reflect.TypeFor[T](),
		handler: func(ctx context.Context, n domain.NotificationMessage) error {
			return handler(ctx, n.(T))
		},
	})
}

// SubscribeAll registers handler for every notification. Catch-all handlers
// run after the typed handlers.
func SubscribeAll(m *Mediator, handler HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.catchAll = append(m.catchAll, handler)
}

// Publish invokes every handler registered for the notification's type, one at
// a time. The first handler error stops delivery and is returned wrapped. A
// notification without handlers is not an error.
func (m *Mediator) Publish(ctx context.Context, notification domain.NotificationMessage) error {
	if notification == nil {
		return ErrNilNotification
	}

	typ := reflect.TypeOf(notification)
	handlers := m.handlersFor(typ)

	if len(handlers) == 0 {
		m.logger.DebugContext(ctx, "no handlers for notification", slog.String("type", typ.String()))
		return nil
	}

	for i, h := range handlers {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dispatching %s: %w", typ, err)
		}
		if err := h(ctx, notification); err != nil {
			return fmt.Errorf("handler %d of %d for %s: %w", i+1, len(handlers), typ, err)
		}
	}

	return nil
}

// handlersFor copies the matching handlers under a read lock so they run
// without holding it.
func (m *Mediator) handlersFor(typ reflect.Type) []HandlerFunc {
	m.mu.RLock()
	defer m.mu.RUnlock()

	handlers := make([]HandlerFunc, 0, len(m.typed)+len(m.catchAll))
	for _, s := range m.typed {
		if s.matches(typ) {
			handlers = append(handlers, s.handler)
		}
	}
	return append(handlers, m.catchAll...)
}
