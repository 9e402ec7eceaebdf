package mediator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-domain-primitives/mediator"
	"github.com/jsamuelsen11/go-domain-primitives/mocks"
)

func testSettings() mediator.BreakerSettings {
	return mediator.BreakerSettings{
		Name:          "notification-bus",
		MaxFailures:   2,
		Timeout:       time.Hour,
		HalfOpenLimit: 1,
	}
}

func TestBreakerBus_PassesThrough(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockNotificationBus(t)
	next.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	b := mediator.NewBreakerBus(next, testSettings(), nil)

	if err := b.Publish(context.Background(), waved{}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := b.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
	if b.Name() != "notification-bus" {
		t.Errorf("Name() = %q, want %q", b.Name(), "notification-bus")
	}
}

func TestBreakerBus_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	errDown := errors.New("down")

	next := mocks.NewMockNotificationBus(t)
	next.EXPECT().Publish(mock.Anything, mock.Anything).Return(errDown).Times(2)

	b := mediator.NewBreakerBus(next, testSettings(), nil)

	for range 2 {
		if err := b.Publish(context.Background(), waved{}); !errors.Is(err, errDown) {
			t.Fatalf("Publish() error = %v, want %v", err, errDown)
		}
	}

	// Breaker is open: the wrapped bus is not called again.
	err := b.Publish(context.Background(), waved{})
	if !errors.Is(err, mediator.ErrBusUnavailable) {
		t.Errorf("Publish() error = %v, want ErrBusUnavailable", err)
	}
	if err := b.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() = nil, want open breaker error")
	}
}

func TestBreakerBus_CancellationDoesNotTrip(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockNotificationBus(t)
	next.EXPECT().Publish(mock.Anything, mock.Anything).Return(context.Canceled).Times(3)

	b := mediator.NewBreakerBus(next, testSettings(), nil)

	for range 3 {
		if err := b.Publish(context.Background(), waved{}); !errors.Is(err, context.Canceled) {
			t.Fatalf("Publish() error = %v, want context.Canceled", err)
		}
	}
	if err := b.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}

func TestThrottledBus(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockNotificationBus(t)
	next.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	// One token, refilled far slower than the test runs.
	b := mediator.NewThrottledBus(next, 0.001, 1)

	if err := b.Publish(context.Background(), waved{}); err != nil {
		t.Fatalf("first Publish() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := b.Publish(ctx, waved{}); err == nil {
		t.Error("second Publish() error = nil, want capacity error")
	}
}
