// Package breaker builds the gobreaker circuit breakers shared by the
// notification bus and the outbound HTTP client, and maps their state to
// health-check results.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Settings configures a breaker.
type Settings struct {
	Name          string
	MaxFailures   int // consecutive failures that open the breaker
	Timeout       time.Duration
	HalfOpenLimit int // trial calls allowed while half-open
}

// New creates a breaker that trips after MaxFailures consecutive failures and
// logs state changes at warn level. A cancelled call is not a failure. A nil
// logger discards the logs.
func New(s Settings, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: toUint32(s.HalfOpenLimit),
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= s.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Run executes fn through cb.
func Run(cb *gobreaker.CircuitBreaker[struct{}], fn func() error) error {
	_, err := cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// IsRejection reports whether err means the breaker refused the call.
func IsRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Health reports cb's state as a health-check result: closed is healthy,
// half-open is degraded and open is failing.
func Health(cb *gobreaker.CircuitBreaker[struct{}]) error {
	name := cb.Name()
	switch state := cb.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", name, state)
	}
}

// toUint32 clamps v into the uint32 range.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
