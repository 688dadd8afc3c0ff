package order

import (
	"errors"
	"fmt"
	"time"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order registry: who ordered what, the derived
// total, the current status label and the creation/update timestamps.
//
// Order follows these invariants:
//   - The identifier is a valid UUID and never changes
//   - The owning user identifier is not empty
//   - Items are non-empty and immutable after creation
//   - Total is computed once at creation and never recomputed
//   - Status is always one of the five valid statuses
//   - UpdatedAt is never before CreatedAt and advances on every status change
//
// The owning user is not checked against the user registry.
type Order struct {
	id     kernel.UUID
	userID string
	items  []Item
	status Status

	// total is cached at creation
	total float64

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a pending order. All validation failures are reported together.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - userID: Owning user's identifier (must not be empty)
//   - items: Order lines (at least one); the slice is copied
//   - now: Creation time, used for both CreatedAt and UpdatedAt
//
// Example:
//
//	item, _ := order.NewItem("p1", 2, 10)
//	o, err := order.NewOrder(kernel.NewUUID(), "u1", []order.Item{item}, time.Now().UTC())
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.Status(), o.Total()) // pending 20
func NewOrder(id kernel.UUID, userID string, items []Item, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = Total(o.items)

	return o, nil
}

// RestoreOrder rebuilds an order from previously stored state.
// The stored total is kept as is.
func RestoreOrder(
	id kernel.UUID,
	userID string,
	items []Item,
	status Status,
	total float64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		total:         total,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() string {
	return o.userID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the total computed when the order was created.
func (o *Order) Total() float64 {
	return o.total
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status change, or the creation time.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus overwrites the status and refreshes UpdatedAt.
//
// Any valid status is accepted from any current status, including the current
// one itself. UpdatedAt strictly advances: when now is not after the previous
// UpdatedAt (coarse clock, repeated calls) it is bumped by one nanosecond.
//
// Returns:
//   - nil on success
//   - *errs.ValueIsInvalidError if status is not one of the valid statuses;
//     the order is left unchanged in that case
func (o *Order) ChangeStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if !now.After(o.updatedAt) {
		now = o.updatedAt.Add(time.Nanosecond)
	}

	o.status = status
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.productID == "" {
			return errs.NewValueIsRequiredErrorWithCause("productId", fmt.Errorf("item %d has no product", i))
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
