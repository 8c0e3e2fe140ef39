package commands

import (
	"errors"

	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// maxCommentLength bounds the buyer's optional note.
const maxCommentLength = 500

// CreateOrderCommand represents a request to place a new order.
// The requester becomes the order owner; requested lines reference catalog
// products that are priced and frozen during handling.
//
// Quantities are deliberately not validated here: product existence is
// checked first during handling, so a missing product is reported before a
// bad quantity on the same request.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(requester, address, phone, "call me",
//	    []services.RequestedLine{{ProductID: 7, Quantity: 2}}, kernel.LanguageRu)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requester       auth.Principal
	shippingAddress kernel.ShippingAddress
	phone           kernel.Phone
	comment         string
	lines           []services.RequestedLine
	lang            kernel.Language

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the requester, the shipping details, the comment length and
// that at least one line was requested. Returns an error if any validation fails.
func NewCreateOrderCommand(
	requester auth.Principal,
	shippingAddress kernel.ShippingAddress,
	phone kernel.Phone,
	comment string,
	lines []services.RequestedLine,
	lang kernel.Language,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setShippingAddress(shippingAddress),
		cmd.setPhone(phone),
		cmd.setComment(comment),
		cmd.setLines(lines),
		cmd.setLang(lang),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Requester returns the principal placing the order.
func (c CreateOrderCommand) Requester() auth.Principal {
	return c.requester
}

// ShippingAddress returns the delivery destination.
func (c CreateOrderCommand) ShippingAddress() kernel.ShippingAddress {
	return c.shippingAddress
}

// Phone returns the contact number for the order.
func (c CreateOrderCommand) Phone() kernel.Phone {
	return c.phone
}

// Comment returns the buyer's optional note.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []services.RequestedLine {
	return c.lines
}

// Lang returns the display language frozen into the item snapshots.
func (c CreateOrderCommand) Lang() kernel.Language {
	return c.lang
}

func (c *CreateOrderCommand) setRequester(requester auth.Principal) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	c.requester = requester
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress kernel.ShippingAddress) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *CreateOrderCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setComment(comment string) error {
	if len(comment) > maxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment", len(comment), 0, maxCommentLength)
	}

	c.comment = comment
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.RequestedLine) error {
	if len(lines) == 0 {
		return errs.NewInvalidOrderError("items cannot be empty")
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setLang(lang kernel.Language) error {
	if err := lang.Validate(); err != nil {
		return err
	}

	c.lang = lang
	return nil
}
