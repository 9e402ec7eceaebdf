package app

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/logging"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
	"github.com/jsamuelsen11/go-domain-primitives/mediator"
)

// Compile-time check that Auditor implements ports.OrderHistory.
var _ ports.OrderHistory = (*Auditor)(nil)

// DefaultHistoryLimit is the number of events kept per order when no
// WithHistoryLimit option is given.
const DefaultHistoryLimit = 256

// Auditor consumes order events from the mediator. It logs each delivery and
// keeps the per-order history served by ports.OrderHistory. Each order keeps
// at most limit events; older ones are dropped first. The number of orders
// tracked is not bounded, matching the in-memory repository. Safe for
// concurrent use.
type Auditor struct {
	mu      sync.RWMutex
	history map[int][]ports.OrderEvent
	limit   int
	logger  *slog.Logger
}

// AuditorOption configures an Auditor.
type AuditorOption func(*Auditor)

// WithHistoryLimit caps the events kept per order. Values below 1 are ignored.
func WithHistoryLimit(n int) AuditorOption {
	return func(a *Auditor) {
		if n >= 1 {
			a.limit = n
		}
	}
}

// NewAuditor creates an Auditor with an empty history. A nil logger discards
// output.
func NewAuditor(logger *slog.Logger, opts ...AuditorOption) *Auditor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Auditor{
		history: make(map[int][]ports.OrderEvent),
		limit:   DefaultHistoryLimit,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Subscribe registers the auditor's handlers on m.
func (a *Auditor) Subscribe(m *mediator.Mediator) {
	mediator.Subscribe(m, a.record)
	mediator.Subscribe(m, a.onShipped)
	mediator.Subscribe(m, a.onCancelled)
}

// History returns a copy of the delivered events of an order, oldest first.
func (a *Auditor) History(_ context.Context, orderID int) ([]ports.OrderEvent, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	entries := slices.Clone(a.history[orderID])
	if entries == nil {
		entries = []ports.OrderEvent{}
	}
	return entries, nil
}

func (a *Auditor) record(ctx context.Context, ev orders.Event) error {
	entry := toOrderEvent(ev)

	a.mu.Lock()
	entries := append(a.history[ev.Order()], entry)
	if over := len(entries) - a.limit; over > 0 {
		entries = slices.Delete(entries, 0, over)
	}
	a.history[ev.Order()] = entries
	a.mu.Unlock()

	a.logger.InfoContext(ctx, "order event",
		logging.OrderID(ev.Order()),
		slog.String("event_type", entry.Type),
		slog.String("event_id", entry.EventID.String()),
		slog.String("message", entry.Message),
	)
	return nil
}

func toOrderEvent(ev orders.Event) ports.OrderEvent {
	meta := ev.Meta()
	return ports.OrderEvent{
		OrderID:    ev.Order(),
		EventID:    meta.EventID,
		Type:       reflect.TypeOf(ev).Name(),
		Message:    ev.NotificationMessage(),
		OccurredAt: meta.OccurredAt,
	}
}

func (a *Auditor) onShipped(ctx context.Context, ev orders.OrderShipped) error {
	a.logger.InfoContext(ctx, "order shipped",
		logging.OrderID(ev.OrderID),
		slog.String("total", ev.Total.String()),
	)
	return nil
}

func (a *Auditor) onCancelled(ctx context.Context, ev orders.OrderCancelled) error {
	a.logger.WarnContext(ctx, "order cancelled",
		logging.OrderID(ev.OrderID),
		slog.String("reason", ev.Reason),
	)
	return nil
}
