package order

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one purchase transaction. It is the aggregate root that
// owns the frozen line items and drives the status workflow.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a positive owning user id
//   - Must have at least one line item
//   - Status transitions follow the state machine in Status
//   - cancel reason is set when (and only by) a cancel transition, and is
//     never cleared afterwards since Cancelled is terminal
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the owning user
	userID int64

	// status is the current state in the order lifecycle
	status Status

	// shippingAddress is the delivery destination
	shippingAddress kernel.ShippingAddress

	// phone is the contact number for this order
	phone kernel.Phone

	// comment is the buyer's optional note (empty when absent)
	comment string

	// cancelReason is set by the cancel transition (empty otherwise)
	cancelReason string

	// createdAt / updatedAt are persistence timestamps
	createdAt time.Time
	updatedAt time.Time

	// items are the frozen order lines
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Checking status with the given frozen
// line items. This is the only way to create a valid new order.
//
// The item list must be non-empty: an order without lines is rejected with
// InvalidOrderError before anything touches storage.
func NewOrder(
	id kernel.UUID,
	userID int64,
	shippingAddress kernel.ShippingAddress,
	phone kernel.Phone,
	comment string,
	items []Item,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Checking,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setShippingAddress(shippingAddress),
		order.setPhone(phone),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Used by the
// repository layer; validates the same invariants as NewOrder plus the
// stored status.
func RestoreOrder(
	id kernel.UUID,
	userID int64,
	status Status,
	shippingAddress kernel.ShippingAddress,
	phone kernel.Phone,
	comment string,
	cancelReason string,
	createdAt time.Time,
	updatedAt time.Time,
	items []Item,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:        status,
		comment:       comment,
		cancelReason:  cancelReason,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setShippingAddress(shippingAddress),
		order.setPhone(phone),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence to ensure integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() int64 {
	return o.userID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() kernel.ShippingAddress {
	return o.shippingAddress
}

// Phone returns the contact number for this order.
func (o *Order) Phone() kernel.Phone {
	return o.phone
}

// Comment returns the buyer's note, empty when absent.
func (o *Order) Comment() string {
	return o.comment
}

// CancelReason returns the recorded cancellation reason, empty unless the
// order was cancelled.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the frozen order lines. The returned slice is a copy;
// mutating it does not affect the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount sums the stored line subtotals with decimal arithmetic.
// The total is always derived from the lines, never cached, so a rendered
// total is consistent with the persisted items by construction.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.NewFromInt(0)
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ViewableBy reports whether the principal may read an order owned by
// ownerID: admins and the owning user only. The read side applies the
// same rule to projections without restoring the aggregate.
func ViewableBy(requester auth.Principal, ownerID int64) bool {
	return requester.IsAdmin() || ownerID == requester.ID()
}

// CanBeViewedBy reports whether the principal may read this order.
func (o *Order) CanBeViewedBy(requester auth.Principal) bool {
	return ViewableBy(requester, o.userID)
}

// Verify moves the order to Verified.
//
// Guards:
//   - only admins may verify
//   - the order must not be in a terminal status
//
// On guard failure the order is left unchanged and a ForbiddenError or
// InvalidOrderError is returned.
func (o *Order) Verify(requester auth.Principal) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	if !requester.IsAdmin() {
		return errs.NewForbiddenError("verify order")
	}

	newStatus, err := o.status.Verify()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves the order to Cancelled and records the reason.
//
// Guards:
//   - the requester must be an admin or the owning user
//   - the reason must be non-empty
//   - the order must not be in a terminal status
//
// The reason is kept forever: Cancelled is terminal, so nothing ever
// clears it.
func (o *Order) Cancel(requester auth.Principal, reason string) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	if !requester.IsAdmin() && o.userID != requester.ID() {
		return errs.NewForbiddenError("cancel order")
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("cancel_reason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	o.touch()
	return nil
}

// Complete moves the order to Done.
//
// Guards:
//   - only admins may complete
//   - the order must be exactly in Verified status
func (o *Order) Complete(requester auth.Principal) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	if !requester.IsAdmin() {
		return errs.NewForbiddenError("complete order")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// UpdateDetails applies an administrative edit to the order's contact
// fields. Nil arguments leave the corresponding field unchanged. Status,
// items, and cancel reason are never touched here.
func (o *Order) UpdateDetails(
	shippingAddress *kernel.ShippingAddress,
	phone *kernel.Phone,
	comment *string,
) error {
	if shippingAddress != nil {
		if err := o.setShippingAddress(*shippingAddress); err != nil {
			return err
		}
	}
	if phone != nil {
		if err := o.setPhone(*phone); err != nil {
			return err
		}
	}
	if comment != nil {
		o.comment = *comment
	}

	o.touch()
	return nil
}

// touch refreshes the aggregate's updatedAt timestamp.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setUserID validates and sets the owning user reference.
func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id",
			fmt.Errorf("%d is not greater than 0", userID))
	}
	o.userID = userID
	return nil
}

// setShippingAddress validates and sets the delivery destination.
func (o *Order) setShippingAddress(address kernel.ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

// setPhone validates and sets the contact number.
func (o *Order) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.phone = phone
	return nil
}

// setItems validates and sets the order lines. The list must be non-empty
// and every item must be constructor-built.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewInvalidOrderError("items cannot be empty")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
