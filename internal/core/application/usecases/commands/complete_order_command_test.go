package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCompleteOrderCommand(id, adminPrincipal(t))

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
}

func TestNewCompleteOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCompleteOrderCommand(kernel.UUID{}, auth.Principal{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, auth.ErrPrincipalIsNotConstructed)
}

func TestCompleteOrderCommand_Validate_ZeroValue(t *testing.T) {
	err := commands.CompleteOrderCommand{}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
}
