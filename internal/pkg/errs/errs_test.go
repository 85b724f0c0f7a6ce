package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("operationId", "123")

		assert.Equal(t, "operationId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("productId", "p-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productId, ID is: p-1 (cause: record not found)",
			err.Error())
	})

	t.Run("non string ids are formatted verbatim", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("operationId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("movementType", errors.New("reserved for the system"))

		assert.Equal(t, "value is invalid: movementType (cause: reserved for the system)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("description", 501, 0, 500)

		assert.Equal(t, 501, err.Value)
		assert.Equal(t, "value is invalid: 501 is description, min value is 0, max value is 500", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("limit", -5, 1, 100, errors.New("bad query"))

		assert.Equal(t,
			"value is invalid: -5 is limit, min value is 1, max value is 100 (cause: bad query)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("productId")
	assert.Equal(t, "value is required: productId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("productId", errors.New("empty body"))
	assert.Equal(t, "value is required: productId (cause: empty body)", withCause.Error())
}

func TestPersistenceConflictError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewPersistenceConflictError("operation", "op-1")

		assert.Equal(t, "persistence conflict: operation op-1 was modified concurrently", err.Error())
		assert.Equal(t, errs.ErrPersistenceConflict, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewPersistenceConflictErrorWithCause("operation", "op-1", errors.New("deadlock detected"))

		assert.Equal(t,
			"persistence conflict: operation op-1 was modified concurrently (cause: deadlock detected)",
			err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("operationId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("limit", 0, 1, 100), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("productId"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewPersistenceConflictError("operation", "1"), errs.ErrPersistenceConflict)

	var conflict *errs.PersistenceConflictError
	wrapped := errors.Join(errors.New("update failed"), errs.NewPersistenceConflictError("operation", "1"))
	require.ErrorAs(t, wrapped, &conflict)
	assert.Equal(t, "operation", conflict.ParamName)
}
