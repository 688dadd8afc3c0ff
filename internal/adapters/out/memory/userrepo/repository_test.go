package userrepo_test

import (
	"sync"
	"testing"
	"time"

	"registry/internal/adapters/out/memory/userrepo"
	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/user"
	"registry/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newUser(t *testing.T) *user.User {
	t.Helper()

	u, err := user.NewUser(kernel.NewUUID(), gofakeit.Email(), gofakeit.Name(), time.Now().UTC())
	require.NoError(t, err)
	return u
}

func TestInMemoryUserRepository_CRUD(t *testing.T) {
	ctx := t.Context()
	repo := userrepo.NewInMemoryUserRepository()
	u := newUser(t)

	require.NoError(t, repo.Add(ctx, u))
	require.ErrorIs(t, repo.Add(ctx, u), errs.ErrValueIsInvalid)

	got, err := repo.Get(ctx, u.ID())
	require.NoError(t, err)
	assert.True(t, got.ID().IsEqual(u.ID()))
	assert.Equal(t, u.Email(), got.Email())
	assert.Equal(t, u.Name(), got.Name())
	assert.Equal(t, u.CreatedAt(), got.CreatedAt())

	require.NoError(t, repo.Delete(ctx, u.ID()))
	_, err = repo.Get(ctx, u.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, repo.Delete(ctx, u.ID()), errs.ErrObjectNotFound)
}

func TestInMemoryUserRepository_List(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := t.Context()
	repo := userrepo.NewInMemoryUserRepository()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := user.NewUser(kernel.NewUUID(), gofakeit.Email(), gofakeit.Name(), time.Now().UTC())
			assert.NoError(t, err)
			assert.NoError(t, repo.Add(ctx, u))
		}()
	}
	wg.Wait()

	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 10)
}

func TestInMemoryUserRepository_RejectsNotConstructedUser(t *testing.T) {
	repo := userrepo.NewInMemoryUserRepository()

	require.ErrorIs(t, repo.Add(t.Context(), &user.User{}), user.ErrUserIsNotConstructed)
}
