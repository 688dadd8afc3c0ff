package commands

import (
	"context"
	"errors"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/ports"
	"registry/internal/pkg/guard"
)

var (
	ErrDeleteUserCommandIsNotConstructed = errors.New(
		"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
	)
)

// DeleteUserCommand represents a request to remove a user.
// Orders owned by the user are left untouched.
type DeleteUserCommand struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

// DeleteUserCommandHandler removes users.
type DeleteUserCommandHandler struct {
	userRepo ports.UserRepository
}

func NewDeleteUserCommandHandler(userRepo ports.UserRepository) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{userRepo: userRepo}
}

// Handle removes the user, returning errs.ObjectNotFoundError if it does not exist.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.userRepo.Delete(ctx, cmd.UserID())
}
