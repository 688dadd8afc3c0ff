package ports

import (
	"context"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/order"
)

// OrderFilter narrows List results. A nil field does not filter.
type OrderFilter struct {
	// UserID keeps only orders whose owner equals it exactly.
	UserID *string
}

// OrderRepository defines the storage contract for order aggregates.
// Implementations must be safe for concurrent use and must not let callers
// alias stored state: aggregates passed in and handed out are independent copies.
type OrderRepository interface {
	// Add stores a new order. The order must be valid and its id unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Modify loads the order, applies change to it and stores the result as one
	// step: no other write to the store can happen in between. If change fails
	// nothing is stored and its error is returned unchanged.
	// Returns errs.ObjectNotFoundError if the order is absent; change is not called then.
	Modify(ctx context.Context, id kernel.UUID, change func(*order.Order) error) (*order.Order, error)

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError if the order is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. No tombstone is kept.
	// Returns errs.ObjectNotFoundError if the order is absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns every order matching filter, each exactly once.
	// An empty result is not an error.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// CountByStatus returns the number of stored orders per valid status.
	// Every valid status is present in the result, with zero if no order has it.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}
