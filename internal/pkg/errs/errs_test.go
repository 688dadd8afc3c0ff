package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"registry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "5f0c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "5f0c", err.ID)
		assert.Equal(t, "object not found: 5f0c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "5f0c\r\nx")

		assert.Equal(t, "object not found: 5f0c x", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("lost is not a valid status"))

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "value is invalid: status (cause: lost is not a valid status)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := &errs.ValueIsInvalidError{ParamName: "user\nid"}

		assert.Equal(t, "value is invalid: user id", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("userId")

		assert.Equal(t, "userId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: userId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("items", errors.New("order has no items"))

		assert.Equal(t, "value is required: items (cause: order has no items)", err.Error())
	})
}

func TestErrorsCanBeClassified(t *testing.T) {
	wrapped := fmt.Errorf("get order: %w", errs.NewObjectNotFoundError("order", "1"))
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	joined := errors.Join(errs.NewValueIsRequiredError("email"), errs.NewValueIsRequiredError("name"))
	require.ErrorIs(t, joined, errs.ErrValueIsRequired)
	require.NotErrorIs(t, joined, errs.ErrValueIsInvalid)
}
