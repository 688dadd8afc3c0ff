package queries_test

import (
	"testing"
	"time"

	"registry/internal/adapters/out/memory/userrepo"
	"registry/internal/core/application/usecases/queries"
	"registry/internal/core/domain/model/kernel"
	"registry/internal/core/domain/model/user"
	"registry/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserQueries(t *testing.T) {
	ctx := t.Context()
	repo := userrepo.NewInMemoryUserRepository()

	users, err := queries.NewListUsersQueryHandler(repo).Handle(ctx, queries.NewListUsersQuery())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	u, err := user.NewUser(kernel.NewUUID(), gofakeit.Email(), gofakeit.Name(), time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, u))

	users, err = queries.NewListUsersQueryHandler(repo).Handle(ctx, queries.NewListUsersQuery())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, u.Email(), users[0].Email())

	query, err := queries.NewGetUserQuery(u.ID())
	require.NoError(t, err)
	got, err := queries.NewGetUserQueryHandler(repo).Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, u.Name(), got.Name())

	query, err = queries.NewGetUserQuery(kernel.NewUUID())
	require.NoError(t, err)
	_, err = queries.NewGetUserQueryHandler(repo).Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUserQueries_NotConstructed(t *testing.T) {
	repo := userrepo.NewInMemoryUserRepository()

	_, err := queries.NewListUsersQueryHandler(repo).Handle(t.Context(), queries.ListUsersQuery{})
	require.ErrorIs(t, err, queries.ErrListUsersQueryIsNotConstructed)

	_, err = queries.NewGetUserQueryHandler(repo).Handle(t.Context(), queries.GetUserQuery{})
	require.ErrorIs(t, err, queries.ErrGetUserQueryIsNotConstructed)
}
