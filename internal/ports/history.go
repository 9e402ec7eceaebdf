package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderEvent is one entry of an order's event history.
type OrderEvent struct {
	OrderID    int
	EventID    uuid.UUID
	Type       string
	Message    string
	OccurredAt time.Time
}

// OrderHistory exposes the events delivered for each order.
// Implemented by the application layer's auditor; called by handlers.
type OrderHistory interface {
	// History returns the delivered events of an order, oldest first. An
	// order without delivered events yields an empty slice.
	History(ctx context.Context, orderID int) ([]OrderEvent, error)
}

// OrderFeed streams order events to live watchers as they are delivered.
// Implemented by the application layer's feed; called by the stream handler.
type OrderFeed interface {
	// Watch returns a channel of events for orderID, or for every order when
	// orderID is zero. The channel is closed when ctx is done or when the
	// watcher falls too far behind.
	Watch(ctx context.Context, orderID int) (<-chan OrderEvent, error)
}
