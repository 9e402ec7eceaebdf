package mediator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/events"
	"github.com/jsamuelsen11/go-domain-primitives/internal/breaker"
)

// ErrBusUnavailable is returned while the circuit breaker rejects deliveries.
var ErrBusUnavailable = errors.New("notification bus unavailable")

// Compile-time interface check.
var _ events.NotificationBus = (*BreakerBus)(nil)

// BreakerSettings configures a BreakerBus.
type BreakerSettings struct {
	// Name identifies the breaker in logs and health results.
	Name string
	// MaxFailures is the number of consecutive failures that opens the breaker.
	MaxFailures int
	// Timeout is how long the breaker stays open before it lets a trial
	// delivery through.
	Timeout time.Duration
	// HalfOpenLimit is the number of trial deliveries allowed while half-open.
	HalfOpenLimit int
}

// BreakerBus guards a NotificationBus with a circuit breaker. Cancelled
// deliveries do not count as failures.
type BreakerBus struct {
	next events.NotificationBus
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerBus wraps next in a circuit breaker. A nil logger discards state
// change logs.
func NewBreakerBus(next events.NotificationBus, s BreakerSettings, logger *slog.Logger) *BreakerBus {
	return &BreakerBus{
		next: next,
		cb:   breaker.New(breaker.Settings(s), logger),
	}
}

// Publish delivers through the wrapped bus unless the breaker is open.
func (b *BreakerBus) Publish(ctx context.Context, notification domain.NotificationMessage) error {
	err := breaker.Run(b.cb, func() error {
		return b.next.Publish(ctx, notification)
	})
	if breaker.IsRejection(err) {
		return fmt.Errorf("%w: %w", ErrBusUnavailable, err)
	}
	return err
}

// Name returns the breaker name.
func (b *BreakerBus) Name() string {
	return b.cb.Name()
}

// HealthCheck reports the breaker state without delivering anything.
func (b *BreakerBus) HealthCheck(_ context.Context) error {
	return breaker.Health(b.cb)
}
