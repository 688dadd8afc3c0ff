package queries

import (
	"context"
	"errors"

	"registry/internal/core/domain/model/order"
	"registry/internal/core/ports"
	"registry/internal/pkg/guard"
)

var (
	ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
		"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
	)
)

// CountOrdersByStatusQuery aggregates the stored orders by their current status.
// It backs the periodic statistics job.
type CountOrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrdersByStatusQuery() CountOrdersByStatusQuery {
	return CountOrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

// CountOrdersByStatusQueryResponse is one row of the status breakdown.
type CountOrdersByStatusQueryResponse struct {
	Status order.Status
	Count  int
}

type CountOrdersByStatusQueryHandler struct {
	orderRepo ports.OrderRepository
}

func NewCountOrdersByStatusQueryHandler(orderRepo ports.OrderRepository) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{orderRepo: orderRepo}
}

// Handle returns one row per valid status in declaration order, including zero counts.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) ([]CountOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts, err := h.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	statuses := order.ValidStatuses()
	rows := make([]CountOrdersByStatusQueryResponse, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, CountOrdersByStatusQueryResponse{Status: s, Count: counts[s]})
	}
	return rows, nil
}
