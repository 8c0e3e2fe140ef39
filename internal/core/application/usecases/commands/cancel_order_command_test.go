package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(id, customerPrincipal(t, 7), "out of stock")

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, "out of stock", cmd.Reason())
}

func TestNewCancelOrderCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), customerPrincipal(t, 7), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCancelOrderCommand_ReasonTooLong(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), customerPrincipal(t, 7), longText(301))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCancelOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{}, customerPrincipal(t, 7), "reason")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelOrderCommand_Validate_ZeroValue(t *testing.T) {
	err := commands.CancelOrderCommand{}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
