package userrepo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/user"
	"registry/internal/core/ports"
	"registry/internal/pkg/errs"

	"github.com/samber/lo"
)

var _ ports.UserRepository = (*InMemoryUserRepository)(nil)

// InMemoryUserRepository implements ports.UserRepository over a mutex-guarded map.
type InMemoryUserRepository struct {
	mu      sync.RWMutex
	records map[kernel.UUID]userRecord
}

// NewInMemoryUserRepository creates an empty user store.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		records: make(map[kernel.UUID]userRecord),
	}
}

func (r *InMemoryUserRepository) Add(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := fromDomain(aggregate)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[rec.ID]; exists {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("user %s already exists", rec.ID))
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *InMemoryUserRepository) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	rec, exists := r.records[id]
	r.mu.RUnlock()

	if !exists {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}
	return toDomain(rec)
}

func (r *InMemoryUserRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return errs.NewObjectNotFoundError("user", id.String())
	}
	delete(r.records, id)
	return nil
}

// List returns all users, oldest first.
func (r *InMemoryUserRepository) List(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	records := lo.Values(r.records)
	r.mu.RUnlock()

	slices.SortFunc(records, func(a, b userRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	users := make([]*user.User, 0, len(records))
	for _, rec := range records {
		u, err := toDomain(rec)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
