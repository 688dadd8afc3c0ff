package ports

import (
	"context"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/user"
)

// UserRepository defines the storage contract for user aggregates.
type UserRepository interface {
	// Add stores a new user. The user must be valid and its id unused.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its identifier.
	// Returns errs.ObjectNotFoundError if the user is absent.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Delete removes a user.
	// Returns errs.ObjectNotFoundError if the user is absent.
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns every stored user.
	List(ctx context.Context) ([]*user.User, error)
}
