package commands

import (
	"errors"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to set an order's status.
//
// The status is carried as received and parsed by the handler only after the
// order is found, so a missing order is reported before an invalid status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the order identifier.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status string) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status as received.
func (c ChangeOrderStatusCommand) Status() string {
	return c.status
}
