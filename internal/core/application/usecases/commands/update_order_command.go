package commands

import (
	"errors"

	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents an administrative partial edit of an
// order's delivery details. Nil fields are left unchanged; status and
// line items are never touched by this command.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	requester       auth.Principal
	shippingAddress *kernel.ShippingAddress
	phone           *kernel.Phone
	comment         *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order's delivery details.
// At least one field must be supplied; supplied fields must be valid.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	requester auth.Principal,
	shippingAddress *kernel.ShippingAddress,
	phone *kernel.Phone,
	comment *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if shippingAddress == nil && phone == nil && comment == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("update fields")
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequester(requester),
		cmd.setShippingAddress(shippingAddress),
		cmd.setPhone(phone),
		cmd.setComment(comment),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requester returns the principal requesting the edit.
func (c UpdateOrderCommand) Requester() auth.Principal {
	return c.requester
}

// ShippingAddress returns the new delivery destination, or nil to keep the current one.
func (c UpdateOrderCommand) ShippingAddress() *kernel.ShippingAddress {
	return c.shippingAddress
}

// Phone returns the new contact number, or nil to keep the current one.
func (c UpdateOrderCommand) Phone() *kernel.Phone {
	return c.phone
}

// Comment returns the new note, or nil to keep the current one.
func (c UpdateOrderCommand) Comment() *string {
	return c.comment
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setRequester(requester auth.Principal) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	c.requester = requester
	return nil
}

func (c *UpdateOrderCommand) setShippingAddress(shippingAddress *kernel.ShippingAddress) error {
	if shippingAddress == nil {
		return nil
	}
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *UpdateOrderCommand) setPhone(phone *kernel.Phone) error {
	if phone == nil {
		return nil
	}
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *UpdateOrderCommand) setComment(comment *string) error {
	if comment == nil {
		return nil
	}
	if len(*comment) > maxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment", len(*comment), 0, maxCommentLength)
	}

	c.comment = comment
	return nil
}
