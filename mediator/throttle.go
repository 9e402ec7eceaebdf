package mediator

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/events"
)

// Compile-time interface check.
var _ events.NotificationBus = (*ThrottledBus)(nil)

// ThrottledBus limits the delivery rate of a NotificationBus with a token
// bucket. Publish blocks until a token is available or ctx is done.
type ThrottledBus struct {
	next    events.NotificationBus
	limiter *rate.Limiter
}

// NewThrottledBus allows perSecond deliveries per second with bursts of up to
// burst deliveries.
func NewThrottledBus(next events.NotificationBus, perSecond float64, burst int) *ThrottledBus {
	return &ThrottledBus{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Publish waits for capacity, then delivers through the wrapped bus.
func (b *ThrottledBus) Publish(ctx context.Context, notification domain.NotificationMessage) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for bus capacity: %w", err)
	}
	return b.next.Publish(ctx, notification)
}
