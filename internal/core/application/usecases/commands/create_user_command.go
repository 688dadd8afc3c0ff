package commands

import (
	"context"
	"errors"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/user"
	"registry/internal/core/ports"
	"registry/internal/pkg/errs"
	"registry/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand represents a request to register a user.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	email string
	name  string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand validates that email and name are both present.
func NewCreateUserCommand(email, name string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setName(name),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Email() string {
	return c.email
}

func (c CreateUserCommand) Name() string {
	return c.name
}

func (c *CreateUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

// CreateUserCommandHandler registers users with a fresh identifier.
type CreateUserCommandHandler struct {
	userRepo ports.UserRepository
}

func NewCreateUserCommandHandler(userRepo ports.UserRepository) CreateUserCommandHandler {
	return CreateUserCommandHandler{userRepo: userRepo}
}

// Handle creates the user and returns it as stored.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := user.NewUser(kernel.NewUUID(), cmd.Email(), cmd.Name(), now())
	if err != nil {
		return nil, err
	}

	if err = h.userRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
