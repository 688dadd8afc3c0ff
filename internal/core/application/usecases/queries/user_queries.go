package queries

import (
	"context"
	"errors"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/user"
	"registry/internal/core/ports"
	"registry/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
)

type ListUsersQuery struct {
	guard guard.ConstructorGuard
}

func NewListUsersQuery() ListUsersQuery {
	return ListUsersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

type ListUsersQueryHandler struct {
	userRepo ports.UserRepository
}

func NewListUsersQueryHandler(userRepo ports.UserRepository) ListUsersQueryHandler {
	return ListUsersQueryHandler{userRepo: userRepo}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users, err := h.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = make([]*user.User, 0)
	}
	return users, nil
}

type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

type GetUserQueryHandler struct {
	userRepo ports.UserRepository
}

func NewGetUserQueryHandler(userRepo ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{userRepo: userRepo}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.userRepo.Get(ctx, query.UserID())
}
