package commands

import (
	"errors"

	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrVerifyOrderCommandIsNotConstructed = errors.New(
		"VerifyOrderCommand must be created via NewVerifyOrderCommand constructor",
	)
)

// VerifyOrderCommand represents a request to move an order to "verified".
// Only administrators may verify; the rule itself lives on the aggregate.
type VerifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requester auth.Principal

	guard guard.ConstructorGuard
}

// NewVerifyOrderCommand creates a command to verify an order.
// Validates that the order ID and the requesting principal are constructed.
func NewVerifyOrderCommand(orderID kernel.UUID, requester auth.Principal) (VerifyOrderCommand, error) {
	cmd := VerifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequester(requester),
	); err != nil {
		return VerifyOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyOrderCommandIsNotConstructed if validation fails.
func (c VerifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to verify.
func (c VerifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requester returns the principal requesting the transition.
func (c VerifyOrderCommand) Requester() auth.Principal {
	return c.requester
}

func (c *VerifyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyOrderCommand) setRequester(requester auth.Principal) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	c.requester = requester
	return nil
}
