package events

import (
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
)

// Register declares a single shared Publisher in the injector. The publisher
// is built lazily on first use from the NotificationBus provided in the
// injector; a *slog.Logger, when provided, is used for rejected items.
// Additional options are applied after the logger.
//
//	do.ProvideValue[events.NotificationBus](injector, bus)
//	events.Register(injector)
//	publisher := do.MustInvoke[events.Publisher](injector)
func Register(injector do.Injector, opts ...Option) {
	do.Provide(injector, func(i do.Injector) (Publisher, error) {
		bus, err := do.Invoke[NotificationBus](i)
		if err != nil {
			return nil, fmt.Errorf("resolving notification bus: %w", err)
		}

		all := make([]Option, 0, len(opts)+1)
		if logger, err := do.Invoke[*slog.Logger](i); err == nil {
			all = append(all, WithLogger(logger))
		}
		all = append(all, opts...)

		return NewPublisher(bus, all...), nil
	})
}
