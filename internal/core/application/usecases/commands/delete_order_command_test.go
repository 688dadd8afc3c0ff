package commands_test

import (
	"testing"

	"registry/internal/core/application/usecases/commands"
	"registry/internal/core/domain/model/kernel"
	"registry/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(id)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Delete", ctx, id).Return(nil).Once()

		h := commands.NewDeleteOrderCommandHandler(repo)

		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("order", id.String())).Once()

		h := commands.NewDeleteOrderCommandHandler(repo)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("not constructed", func(t *testing.T) {
		h := commands.NewDeleteOrderCommandHandler(new(MockOrderRepository))

		require.ErrorIs(t, h.Handle(ctx, commands.DeleteOrderCommand{}), commands.ErrDeleteOrderCommandIsNotConstructed)
	})
}
