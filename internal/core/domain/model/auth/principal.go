// Package auth models the resolved identity the external access guard hands
// to the core. Credentials are never inspected here: the core receives a
// Principal value (id + role) and threads it into every authorization
// decision.
package auth

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through the NewPrincipal factory method.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the authenticated requester: a user identifier plus role.
// It is a value object; authorization checks ask only IsAdmin and ID.
type Principal struct {
	id   int64
	role Role

	isConstructed bool
}

// NewPrincipal creates a validated Principal.
// The id must be positive and the role must be a known role.
func NewPrincipal(id int64, role Role) (Principal, error) {
	if id <= 0 {
		return Principal{}, errs.NewValueIsInvalidErrorWithCause("principal id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// ID returns the principal's user identifier.
func (p Principal) ID() int64 {
	return p.id
}

// Role returns the principal's role.
func (p Principal) Role() Role {
	return p.role
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// Validate returns ErrPrincipalIsNotConstructed for zero values.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}
