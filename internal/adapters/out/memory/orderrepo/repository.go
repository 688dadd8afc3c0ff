package orderrepo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/order"
	"registry/internal/core/ports"
	"registry/internal/pkg/errs"

	"github.com/samber/lo"
)

var _ ports.OrderRepository = (*InMemoryOrderRepository)(nil)

// InMemoryOrderRepository implements ports.OrderRepository over a map keyed by order id.
// State lives as long as the repository value; there is no persistence.
// A single RWMutex serializes writers.
type InMemoryOrderRepository struct {
	mu      sync.RWMutex
	records map[kernel.UUID]orderRecord
}

// NewInMemoryOrderRepository creates an empty order store.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		records: make(map[kernel.UUID]orderRecord),
	}
}

// Add stores a new order.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := fromDomain(aggregate)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[rec.ID]; exists {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order %s already exists", rec.ID))
	}
	r.records[rec.ID] = rec
	return nil
}

// Modify applies change to a stored order while holding the write lock, so
// concurrent modifications of one order are serialized and none is lost.
func (r *InMemoryOrderRepository) Modify(
	_ context.Context,
	id kernel.UUID,
	change func(*order.Order) error,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	aggregate, err := toDomain(rec)
	if err != nil {
		return nil, err
	}
	if err = change(aggregate); err != nil {
		return nil, err
	}
	if err = aggregate.Validate(); err != nil {
		return nil, err
	}

	r.records[id] = fromDomain(aggregate)
	return aggregate, nil
}

// Get retrieves an order by ID.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	rec, exists := r.records[id]
	r.mu.RUnlock()

	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return toDomain(rec)
}

// Delete removes an order by ID.
func (r *InMemoryOrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	delete(r.records, id)
	return nil
}

// List returns orders matching filter, oldest first with ties broken by id.
func (r *InMemoryOrderRepository) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	r.mu.RLock()
	records := lo.Filter(lo.Values(r.records), func(rec orderRecord, _ int) bool {
		return filter.UserID == nil || rec.UserID == *filter.UserID
	})
	r.mu.RUnlock()

	slices.SortFunc(records, func(a, b orderRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	orders := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		o, err := toDomain(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// CountByStatus returns the number of orders per valid status.
func (r *InMemoryOrderRepository) CountByStatus(_ context.Context) (map[order.Status]int, error) {
	counts := lo.SliceToMap(order.ValidStatuses(), func(s order.Status) (order.Status, int) {
		return s, 0
	})

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		counts[rec.Status]++
	}
	return counts, nil
}
