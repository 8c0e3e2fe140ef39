package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	address := validAddress(t)
	comment := "leave at the door"

	cmd, err := commands.NewUpdateOrderCommand(id, adminPrincipal(t), &address, nil, &comment)

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	require.NotNil(t, cmd.ShippingAddress())
	assert.Nil(t, cmd.Phone())
	assert.Equal(t, "leave at the door", *cmd.Comment())
}

func TestNewUpdateOrderCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), adminPrincipal(t), nil, nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderCommand_InvalidSuppliedField(t *testing.T) {
	var address kernel.ShippingAddress

	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), adminPrincipal(t), &address, nil, nil)

	require.Error(t, err)
}

func TestNewUpdateOrderCommand_CommentTooLong(t *testing.T) {
	comment := longText(501)

	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), adminPrincipal(t), nil, nil, &comment)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestUpdateOrderCommand_Validate_ZeroValue(t *testing.T) {
	err := commands.UpdateOrderCommand{}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}
