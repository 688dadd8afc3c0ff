package http

import (
	"time"

	"registry/internal/core/domain/model/order"
	"registry/internal/core/domain/model/user"

	"github.com/samber/lo"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type ItemPayload struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	UserID string        `json:"userId"`
	Items  []ItemPayload `json:"items"`
}

type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Items     []ItemPayload `json:"items"`
	Status    string        `json:"status"`
	Total     float64       `json:"total"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toItems(payload []ItemPayload) ([]order.Item, error) {
	items := make([]order.Item, 0, len(payload))
	for _, p := range payload {
		item, err := order.NewItem(p.ProductID, p.Quantity, p.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:     o.ID().String(),
		UserID: o.UserID(),
		Items: lo.Map(o.Items(), func(item order.Item, _ int) ItemPayload {
			return ItemPayload{
				ProductID: item.ProductID(),
				Quantity:  item.Quantity(),
				Price:     item.Price(),
			}
		}),
		Status:    o.Status().String(),
		Total:     o.Total(),
		CreatedAt: o.CreatedAt().UTC(),
		UpdatedAt: o.UpdatedAt().UTC(),
	}
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Email:     u.Email(),
		Name:      u.Name(),
		CreatedAt: u.CreatedAt().UTC(),
	}
}
