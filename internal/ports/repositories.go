package ports

import (
	"context"

	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
)

// OrderRepository defines the storage port for orders.
// Implemented by outbound adapters; called by the application layer.
// Returned orders are copies: mutating them does not change stored state.
type OrderRepository interface {
	// Create reserves the next ID, builds the order with it and stores the
	// result. Nothing is stored when build returns an error.
	Create(ctx context.Context, build func(id int) (*orders.Order, error)) (*orders.Order, error)

	// Get returns the order with the given ID.
	// Returns domain.ErrNotFound if the order does not exist.
	Get(ctx context.Context, id int) (*orders.Order, error)

	// Update applies fn to a copy of the stored order and stores the copy
	// when fn returns nil. Updates of the same order are serialized.
	// Returns domain.ErrNotFound if the order does not exist.
	Update(ctx context.Context, id int, fn func(*orders.Order) error) (*orders.Order, error)

	// List returns all stored orders ordered by ID.
	List(ctx context.Context) ([]*orders.Order, error)
}
