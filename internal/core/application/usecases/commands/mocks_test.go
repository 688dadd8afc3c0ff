package commands_test

import (
	"context"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/order"
	"registry/internal/core/domain/model/user"
	"registry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// Modify hands the stored order from the expectation to change, the way the
// store does under its lock.
func (m *MockOrderRepository) Modify(
	ctx context.Context,
	id kernel.UUID,
	change func(*order.Order) error,
) (*order.Order, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	o, _ := args.Get(0).(*order.Order)
	if err := change(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[order.Status]int)
	return counts, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}
