// Package memory provides in-process implementations of the storage ports.
// State lives for the lifetime of the process only.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
)

// Compile-time interface check.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository is a map of committed order snapshots keyed by ID.
//
// The map lock is held only to read or swap a snapshot, never while a Create
// or Update callback runs, so readers never wait on event dispatch. Updates of
// the same order are serialized by a per-order lock whose wait honours ctx; a
// callback must not update the order it is already updating.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[int]*entry
	lastID int
}

type entry struct {
	writer *semaphore.Weighted // weight 1: held by the running Update
	order  *orders.Order // committed snapshot, swapped under OrderRepository.mu
}

// NewOrderRepository creates an empty repository. IDs start at 1.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[int]*entry)}
}

// Create reserves the next ID and stores the order built with it. The ID is
// consumed even when build fails, and the order is not visible until build
// returns.
func (r *OrderRepository) Create(ctx context.Context, build func(id int) (*orders.Order, error)) (*orders.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.lastID++
	id := r.lastID
	r.mu.Unlock()

	o, err := build(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("building order %d returned no order", id)
	}
	if o.ID() != id {
		return nil, fmt.Errorf("built order has id %d, want %d", o.ID(), id)
	}

	r.mu.Lock()
	r.orders[id] = &entry{writer: semaphore.NewWeighted(1), order: o.Clone()}
	r.mu.Unlock()

	return o.Clone(), nil
}

// Get returns a copy of the committed order.
func (r *OrderRepository) Get(ctx context.Context, id int) (*orders.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.orders[id]
	if !ok {
		return nil, notFound(id)
	}
	return e.order.Clone(), nil
}

// Update applies fn to a copy of the committed order and commits the copy
// when fn succeeds. It waits for a running update of the same order, or
// returns the ctx error if ctx ends first.
func (r *OrderRepository) Update(ctx context.Context, id int, fn func(*orders.Order) error) (*orders.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	e, ok := r.orders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, notFound(id)
	}

	if err := e.writer.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting to update order %d: %w", id, err)
	}
	defer e.writer.Release(1)

	r.mu.RLock()
	working := e.order.Clone()
	r.mu.RUnlock()

	if err := fn(working); err != nil {
		return nil, err
	}

	r.mu.Lock()
	e.order = working
	r.mu.Unlock()

	return working.Clone(), nil
}

// List returns copies of all committed orders ordered by ID.
func (r *OrderRepository) List(ctx context.Context) ([]*orders.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(r.orders))
	list := make([]*orders.Order, 0, len(ids))
	for _, id := range ids {
		list = append(list, r.orders[id].order.Clone())
	}
	return list, nil
}

func notFound(id int) error {
	return fmt.Errorf("%w: order %d", domain.ErrNotFound, id)
}
