package user

import (
	"errors"
	"time"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the aggregate root of the user registry.
// Email and name are required; their format is not checked.
type User struct {
	id        kernel.UUID
	email     string
	name      string
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a user. All validation failures are reported together.
func NewUser(id kernel.UUID, email, name string, now time.Time) (*User, error) {
	u := &User{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user from previously stored state.
func RestoreUser(id kernel.UUID, email, name string, createdAt time.Time) (*User, error) {
	return NewUser(id, email, name, createdAt)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}
