package guard_test

import (
	"errors"
	"sync"
	"testing"

	"registry/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("DeleteOrderCommand must be created via NewDeleteOrderCommand")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type listQuery struct {
		userID string
		guard  guard.ConstructorGuard
	}
	errQuery := errors.New("listQuery must be created via newListQuery")
	newListQuery := func(userID string) listQuery {
		return listQuery{userID: userID, guard: guard.NewConstructorGuard()}
	}

	q := newListQuery("u1")
	copied := q

	require.NoError(t, q.guard.Validate(errQuery))
	require.NoError(t, copied.guard.Validate(errQuery))
	require.ErrorIs(t, listQuery{}.guard.Validate(errQuery), errQuery)
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
		}()
	}
	wg.Wait()
}
