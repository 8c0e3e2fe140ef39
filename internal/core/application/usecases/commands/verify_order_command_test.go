package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifyOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	requester := adminPrincipal(t)

	cmd, err := commands.NewVerifyOrderCommand(id, requester)

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, requester, cmd.Requester())
}

func TestNewVerifyOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewVerifyOrderCommand(kernel.UUID{}, adminPrincipal(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewVerifyOrderCommand_InvalidRequester(t *testing.T) {
	_, err := commands.NewVerifyOrderCommand(kernel.NewUUID(), auth.Principal{})

	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrPrincipalIsNotConstructed)
}

func TestVerifyOrderCommand_Validate_ZeroValue(t *testing.T) {
	err := commands.VerifyOrderCommand{}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrVerifyOrderCommandIsNotConstructed)
}
