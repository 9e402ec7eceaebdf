package ports

import (
	"context"

	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
)

// OrderService defines the service port for order use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every mutating call publishes the domain events the order recorded.
type OrderService interface {
	// ListOrders returns all orders ordered by ID.
	ListOrders(ctx context.Context) ([]*orders.Order, error)

	// GetOrder returns a single order by ID.
	// Returns domain.ErrNotFound if the order does not exist.
	GetOrder(ctx context.Context, id int) (*orders.Order, error)

	// PlaceOrder creates a pending order with a server-assigned ID.
	// Returns domain.ErrValidation if the input fails validation.
	PlaceOrder(ctx context.Context, customer string, shipTo orders.Address) (*orders.Order, error)

	// AddLine appends a product line to a pending order.
	// Returns domain.ErrNotFound, domain.ErrValidation or domain.ErrConflict.
	AddLine(ctx context.Context, id int, sku string, quantity int, unitPrice orders.Money) (*orders.Order, error)

	// ShipOrder ships a pending order that has at least one line.
	// Returns domain.ErrNotFound or domain.ErrConflict.
	ShipOrder(ctx context.Context, id int) (*orders.Order, error)

	// CancelOrder cancels a pending order.
	// Returns domain.ErrNotFound, domain.ErrValidation or domain.ErrConflict.
	CancelOrder(ctx context.Context, id int, reason string) (*orders.Order, error)
}
