package commands

import (
	"errors"

	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// maxCancelReasonLength bounds the explanation recorded with a cancellation.
const maxCancelReasonLength = 300

// CancelOrderCommand represents a request to cancel an order.
// A non-empty reason is mandatory; whether the requester may cancel at all
// (admin, or the owner) is decided by the aggregate.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requester auth.Principal
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates the order ID, the requester, and that the reason is present
// and within bounds.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	requester auth.Principal,
	reason string,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequester(requester),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requester returns the principal requesting the cancellation.
func (c CancelOrderCommand) Requester() auth.Principal {
	return c.requester
}

// Reason returns the cancellation explanation.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setRequester(requester auth.Principal) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	c.requester = requester
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancel_reason")
	}
	if len(reason) > maxCancelReasonLength {
		return errs.NewValueIsOutOfRangeError("cancel_reason", len(reason), 1, maxCancelReasonLength)
	}

	c.reason = reason
	return nil
}
