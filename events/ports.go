package events

import (
	"context"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
)

// NotificationBus delivers a single notification to its consumers. It is
// supplied by the hosting application, e.g. an in-process mediator.
// Implementations should respect context cancellation.
type NotificationBus interface {
	// Publish delivers the notification and returns once delivery has
	// finished or failed.
	Publish(ctx context.Context, notification domain.NotificationMessage) error
}

// BusFunc adapts an ordinary function to the NotificationBus interface.
type BusFunc func(ctx context.Context, notification domain.NotificationMessage) error

// Publish calls f(ctx, notification).
func (f BusFunc) Publish(ctx context.Context, notification domain.NotificationMessage) error {
	return f(ctx, notification)
}

// Publisher forwards the events buffered by entities to a NotificationBus.
type Publisher interface {
	// PublishDomainEvents publishes the buffered events of every entity in
	// items, in order. Items that are not entities are logged and skipped.
	// Returns the first dispatch error, or the context error when ctx is
	// cancelled between dispatches.
	PublishDomainEvents(ctx context.Context, items []domain.NotificationMessage) error
}
