package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/operation"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOperationStatusCommand_ValidInput(t *testing.T) {
	actor := newUserActor(t, kernel.NewUUID())
	id := kernel.NewUUID()

	cmd, err := commands.NewUpdateOperationStatusCommand(actor, id, operation.Loaded)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OperationID())
	assert.Equal(t, operation.Loaded, cmd.Status())
}

func TestNewUpdateOperationStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewUpdateOperationStatusCommand(newUserActor(t, kernel.NewUUID()), kernel.UUID{}, operation.Unknown)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
