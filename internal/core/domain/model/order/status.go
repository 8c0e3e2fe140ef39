package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Checking ──> Verified ──> Done
//	    │            │
//	    └────────────┴──> Cancelled
//
// Done and Cancelled are terminal: no further transition is legal from
// either. No transition re-enters Checking.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Checking is the initial status when an order is first created.
	// Orders in this status are waiting for staff review.
	Checking

	// Verified indicates staff confirmed the order and it is ready
	// for fulfillment.
	Verified

	// Done indicates the order has been fulfilled. Terminal.
	Done

	// Cancelled indicates the order was cancelled by staff or by its
	// owner, with a recorded reason. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their persisted names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Checking:  "checking",
		Verified:  "verified",
		Done:      "done",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Checking:  "checking",
		Verified:  "verified",
		Done:      "done",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a persisted status name.
// Returns an error for names outside the four valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == Done || s == Cancelled
}

// Verify transitions the status to Verified.
//
// Valid from Checking and Verified (re-verification is a no-op transition,
// matching the guard "status not terminal"). Done and Cancelled are
// rejected.
//
// Returns (Verified, nil) on a legal transition, or (0, InvalidOrderError)
// otherwise.
func (s Status) Verify() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidOrderError(
			fmt.Sprintf("cannot verify %s order", s.String()),
		)
	}

	return Verified, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from Checking and Verified. Done and Cancelled are rejected:
// completed orders cannot be cancelled and cancellation is not repeatable.
//
// Returns (Cancelled, nil) on a legal transition, or (0, InvalidOrderError)
// otherwise.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidOrderError(
			fmt.Sprintf("cannot cancel %s order", s.String()),
		)
	}

	return Cancelled, nil
}

// Complete transitions the status to Done.
//
// Valid only from Verified: an order must pass review before fulfillment,
// and Done is not re-enterable.
//
// Returns (Done, nil) on a legal transition, or (0, InvalidOrderError)
// otherwise.
func (s Status) Complete() (Status, error) {
	if s != Verified {
		return 0, errs.NewInvalidOrderError(
			fmt.Sprintf("only verified orders can be completed, order is %s", s.String()),
		)
	}

	return Done, nil
}
