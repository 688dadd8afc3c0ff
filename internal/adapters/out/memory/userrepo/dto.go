// Package userrepo provides the in-memory User Store.
package userrepo

import (
	"time"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/user"
)

type userRecord struct {
	ID        kernel.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

func fromDomain(u *user.User) userRecord {
	return userRecord{
		ID:        u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		CreatedAt: u.CreatedAt(),
	}
}

func toDomain(r userRecord) (*user.User, error) {
	return user.RestoreUser(r.ID, r.Email, r.Name, r.CreatedAt)
}
