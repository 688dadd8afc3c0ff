package commands

import (
	"context"
	"errors"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/ports"
	"registry/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a request to remove an order.
type DeleteOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates the order identifier.
func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeleteOrderCommandHandler removes orders. Deletion has no cascading effects.
type DeleteOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

func NewDeleteOrderCommandHandler(orderRepo ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orderRepo: orderRepo}
}

// Handle removes the order, returning errs.ObjectNotFoundError if it does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepo.Delete(ctx, cmd.OrderID())
}
