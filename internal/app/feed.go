package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/logging"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
	"github.com/jsamuelsen11/go-domain-primitives/mediator"
)

// Compile-time check that Feed implements ports.OrderFeed.
var _ ports.OrderFeed = (*Feed)(nil)

// Feed fans delivered order events out to live watchers. Broadcasting never
// blocks the publish: a watcher whose buffer is full is dropped and its
// channel closed. Safe for concurrent use.
type Feed struct {
	mu       sync.Mutex
	watchers map[*watcher]struct{}
	buffer   int
	logger   *slog.Logger
}

type watcher struct {
	orderID int
	ch      chan ports.OrderEvent
}

// NewFeed creates a Feed whose watchers each buffer up to buffer events. A
// buffer below one is raised to one. A nil logger discards output.
func NewFeed(buffer int, logger *slog.Logger) *Feed {
	if buffer < 1 {
		buffer = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Feed{
		watchers: make(map[*watcher]struct{}),
		buffer:   buffer,
		logger:   logger,
	}
}

// Subscribe registers the feed for every order event on m.
func (f *Feed) Subscribe(m *mediator.Mediator) {
	mediator.Subscribe(m, f.broadcast)
}

// Watch implements ports.OrderFeed.
func (f *Feed) Watch(ctx context.Context, orderID int) (<-chan ports.OrderEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w := &watcher{orderID: orderID, ch: make(chan ports.OrderEvent, f.buffer)}

	f.mu.Lock()
	f.watchers[w] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.drop(w)
	}()

	return w.ch, nil
}

// Watchers returns the number of connected watchers.
func (f *Feed) Watchers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watchers)
}

func (f *Feed) broadcast(ctx context.Context, ev orders.Event) error {
	entry := toOrderEvent(ev)

	f.mu.Lock()
	defer f.mu.Unlock()

	for w := range f.watchers {
		if w.orderID != 0 && w.orderID != entry.OrderID {
			continue
		}
		select {
		case w.ch <- entry:
		default:
			delete(f.watchers, w)
			close(w.ch)
			f.logger.WarnContext(ctx, "dropped slow order feed watcher",
				logging.OrderID(w.orderID),
				slog.String("event_id", entry.EventID.String()),
			)
		}
	}
	return nil
}

// drop removes w and closes its channel unless broadcast already did.
func (f *Feed) drop(w *watcher) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.watchers[w]; !ok {
		return
	}
	delete(f.watchers, w)
	close(w.ch)
}
