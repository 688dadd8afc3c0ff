package queries

import (
	"context"
	"errors"

	"registry/internal/core/domain/model/order"
	"registry/internal/core/ports"
	"registry/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves stored orders, optionally only those owned by one user.
//
// Example:
//
//	userID := "u1"
//	query := NewListOrdersQuery(&userID)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	userID *string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. A nil or empty userID lists every order.
func NewListOrdersQuery(userID *string) ListOrdersQuery {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if userID != nil && *userID != "" {
		id := *userID
		q.userID = &id
	}
	return q
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// UserID returns the owner filter, or nil when all orders are requested.
func (q ListOrdersQuery) UserID() *string {
	return q.userID
}

type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns matching orders. The result is never nil so it encodes as an empty array.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.List(ctx, ports.OrderFilter{UserID: query.UserID()})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
