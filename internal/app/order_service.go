// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/events"
	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/platform/logging"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
)

// ErrPublish is returned when an order's domain events could not be
// dispatched. The order change is not stored in that case.
var ErrPublish = errors.New("publishing domain events")

// Compile-time check that OrderService implements ports.OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService implements ports.OrderService. Each mutation runs inside the
// repository's unit of work: the order method records its events, the events
// are published, and only then is the buffer cleared and the order stored.
type OrderService struct {
	repo      ports.OrderRepository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewOrderService creates an OrderService. A nil logger discards output.
func NewOrderService(repo ports.OrderRepository, publisher events.Publisher, logger *slog.Logger) *OrderService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListOrders returns all orders.
func (s *OrderService) ListOrders(ctx context.Context) ([]*orders.Order, error) {
	s.logger.InfoContext(ctx, "listing orders")

	list, err := s.repo.List(ctx)
	if err != nil {
		s.logFailure(ctx, "ListOrders", 0, err)
		return nil, err
	}

	return list, nil
}

// GetOrder returns a single order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*orders.Order, error) {
	s.logger.InfoContext(ctx, "fetching order", logging.OrderID(id))

	order, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetOrder", id, err)
		return nil, err
	}

	return order, nil
}

// PlaceOrder creates a pending order and publishes OrderPlaced.
func (s *OrderService) PlaceOrder(ctx context.Context, customer string, shipTo orders.Address) (*orders.Order, error) {
	s.logger.InfoContext(ctx, "placing order", slog.String("customer", customer))

	order, err := s.repo.Create(ctx, func(id int) (*orders.Order, error) {
		o, err := orders.Place(id, customer, shipTo)
		if err != nil {
			return nil, err
		}
		if err := s.publish(ctx, o); err != nil {
			return nil, err
		}
		return o, nil
	})
	if err != nil {
		s.logFailure(ctx, "PlaceOrder", 0, err)
		return nil, err
	}

	return order, nil
}

// AddLine appends a product line to a pending order and publishes LineAdded.
func (s *OrderService) AddLine(
	ctx context.Context, id int, sku string, quantity int, unitPrice orders.Money,
) (*orders.Order, error) {
	s.logger.InfoContext(ctx, "adding order line",
		logging.OrderID(id),
		slog.String("sku", sku),
		slog.Int("quantity", quantity),
	)

	return s.mutate(ctx, "AddLine", id, func(o *orders.Order) error {
		return o.AddLine(sku, quantity, unitPrice)
	})
}

// ShipOrder ships a pending order and publishes OrderShipped.
func (s *OrderService) ShipOrder(ctx context.Context, id int) (*orders.Order, error) {
	s.logger.InfoContext(ctx, "shipping order", logging.OrderID(id))

	return s.mutate(ctx, "ShipOrder", id, (*orders.Order).Ship)
}

// CancelOrder cancels a pending order and publishes OrderCancelled.
func (s *OrderService) CancelOrder(ctx context.Context, id int, reason string) (*orders.Order, error) {
	s.logger.InfoContext(ctx, "cancelling order", logging.OrderID(id))

	return s.mutate(ctx, "CancelOrder", id, func(o *orders.Order) error {
		return o.Cancel(reason)
	})
}

// mutate applies change and publishes the resulting events inside a single
// repository update.
func (s *OrderService) mutate(
	ctx context.Context, op string, id int, change func(*orders.Order) error,
) (*orders.Order, error) {
	order, err := s.repo.Update(ctx, id, func(o *orders.Order) error {
		if err := change(o); err != nil {
			return err
		}
		return s.publish(ctx, o)
	})
	if err != nil {
		s.logFailure(ctx, op, id, err)
		return nil, err
	}

	return order, nil
}

// publish dispatches the order's buffered events and clears the buffer once
// all of them were delivered.
func (s *OrderService) publish(ctx context.Context, o *orders.Order) error {
	if err := s.publisher.PublishDomainEvents(ctx, []domain.NotificationMessage{o}); err != nil {
		return fmt.Errorf("%w for order %d: %w", ErrPublish, o.ID(), err)
	}
	o.ClearDomainEvents()
	return nil
}

// logFailure logs rejected business operations at warn level and
// infrastructure failures at error level.
func (s *OrderService) logFailure(ctx context.Context, op string, id int, err error) {
	attrs := []any{
		logging.Operation(op),
		logging.Err(err),
	}
	if id != 0 {
		attrs = append(attrs, logging.OrderID(id))
	}

	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
		s.logger.WarnContext(ctx, "order operation rejected", attrs...)
		return
	}
	s.logger.ErrorContext(ctx, "order operation failed", attrs...)
}
