package order

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one priced line within an order. It carries the product snapshot,
// the ordered quantity, and the line subtotal.
//
// Items are immutable once written: no operation updates an existing item's
// snapshot or subtotal. Changing line items means creating a new order.
type Item struct {
	snapshot Snapshot
	quantity int
	subtotal decimal.Decimal

	isConstructed bool
}

// NewItem creates an order line from a snapshot and quantity, computing
// subtotal = unit price x quantity in fixed-point decimal.
// Quantity must be at least 1; violations fail with InvalidOrderError.
func NewItem(snapshot Snapshot, quantity int) (Item, error) {
	if err := snapshot.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewInvalidOrderError(
			fmt.Sprintf("quantity must be >= 1, got %d", quantity),
		)
	}

	return Item{
		snapshot:      snapshot,
		quantity:      quantity,
		subtotal:      snapshot.Price().Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a persisted order line, keeping the stored
// subtotal instead of recomputing it so historical rows round-trip exactly.
func RestoreItem(snapshot Snapshot, quantity int, subtotal decimal.Decimal) (Item, error) {
	if err := snapshot.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewInvalidOrderError(
			fmt.Sprintf("quantity must be >= 1, got %d", quantity),
		)
	}

	return Item{
		snapshot:      snapshot,
		quantity:      quantity,
		subtotal:      subtotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Snapshot returns the frozen product data for this line.
func (i Item) Snapshot() Snapshot {
	return i.snapshot
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price x quantity as a fixed-point decimal.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}
