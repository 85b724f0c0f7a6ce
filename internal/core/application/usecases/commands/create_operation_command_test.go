package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOperationCommand_ValidInput(t *testing.T) {
	actor := newUserActor(t, kernel.NewUUID())
	id, productID := kernel.NewUUID(), kernel.NewUUID()
	deadline := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOperationCommand(actor, id, productID, "A", "B", &deadline)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OperationID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, "A", cmd.Origin())
	assert.Equal(t, "B", cmd.Destination())
	assert.Equal(t, &deadline, cmd.ExpectedDeliveryAt())
	assert.True(t, actor.TenantID().IsEqual(cmd.Actor().TenantID()))
}

func TestNewCreateOperationCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOperationCommand(kernel.Actor{}, kernel.UUID{}, kernel.NewUUID(), "", "", nil)

	require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOperationCommand_ZeroValue(t *testing.T) {
	var cmd commands.CreateOperationCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOperationCommandIsNotConstructed)
}
