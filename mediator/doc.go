// Package mediator provides an in-process notification bus and decorators
// for any [events.NotificationBus].
//
// Handlers are registered per notification type and invoked sequentially:
//
//	m := mediator.New(mediator.WithLogger(logger))
//	mediator.Subscribe(m, func(ctx context.Context, ev orders.OrderPlaced) error {
//		return mailer.SendConfirmation(ctx, ev.OrderID)
//	})
//
// Decorators compose around the mediator, outermost first:
//
//	bus := mediator.NewBreakerBus(mediator.NewThrottledBus(m, 100, 10), settings, logger)
package mediator
