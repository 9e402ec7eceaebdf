// Package events dispatches the domain events buffered by entities.
//
// A DomainEventPublisher walks a batch of notification messages. Every item
// that exposes a domain.EventSource has its buffered events forwarded to the
// NotificationBus one at a time, in buffer order; any other item is logged at
// error level and skipped.
//
//	publisher := events.NewPublisher(bus, events.WithLogger(logger))
//	err := publisher.PublishDomainEvents(ctx, []domain.NotificationMessage{order})
//
// The publisher is stateless and never clears an entity's buffer: publishing
// the same entity twice delivers its events twice. The owner of the unit of
// work calls Entity.ClearDomainEvents after a successful publish.
//
// For hosts that wire dependencies with samber/do, Register provides a single
// shared Publisher built from the NotificationBus and *slog.Logger already in
// the injector.
package events
