package commands

import (
	"context"

	"registry/internal/core/domain/model/order"
	"registry/internal/core/ports"
)

// ChangeOrderStatusCommandHandler sets the status of an existing order.
// Any valid status is accepted from any current status.
type ChangeOrderStatusCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewChangeOrderStatusCommandHandler creates a handler that updates orders in orderRepo.
func NewChangeOrderStatusCommandHandler(orderRepo ports.OrderRepository) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle parses and applies the status to the stored order in one store step and
// returns the updated order.
//
// Returns:
//   - errs.ObjectNotFoundError if the order does not exist
//   - errs.ValueIsInvalidError if the status is not one of the valid statuses
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// The lookup comes first: a missing order is reported before a bad status.
	return h.orderRepo.Modify(ctx, cmd.OrderID(), func(o *order.Order) error {
		status, err := order.ParseStatus(cmd.Status())
		if err != nil {
			return err
		}
		return o.ChangeStatus(status, now())
	})
}
