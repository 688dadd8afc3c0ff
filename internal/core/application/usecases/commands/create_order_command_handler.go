package commands

import (
	"context"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/order"
	"registry/internal/core/ports"
)

// CreateOrderCommandHandler creates pending orders with a fresh identifier and a computed total.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler that stores orders in orderRepo.
func NewCreateOrderCommandHandler(orderRepo ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle creates the order and returns it as stored.
// Nothing is stored when validation fails.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(kernel.NewUUID(), cmd.UserID(), cmd.Items(), now())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
