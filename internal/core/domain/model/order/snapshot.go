package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrSnapshotIsNotConstructed is returned when a Snapshot instance was not
// created through NewSnapshot or SnapshotProduct.
var ErrSnapshotIsNotConstructed = errors.New(
	"Snapshot must be created via NewSnapshot or SnapshotProduct",
)

// Snapshot is an immutable copy of product data captured at order-creation
// time: product id, the display name in the buyer's language, the unit price,
// an optional image reference, and the category id.
//
// Once written into an order item a snapshot never changes. Editing or
// deleting the live product later must not alter historical orders, so the
// snapshot is the only product data an order ever renders.
type Snapshot struct {
	productID  int64
	name       string
	price      decimal.Decimal
	imageURL   *string
	categoryID int64

	isConstructed bool
}

// SnapshotProduct freezes a live product record into a Snapshot using the
// given display language. Pure function: no side effects, no I/O.
func SnapshotProduct(p product.Product, lang kernel.Language) (Snapshot, error) {
	if err := p.Validate(); err != nil {
		return Snapshot{}, err
	}

	return NewSnapshot(p.ID(), p.Name(lang), p.Price(), p.ImageURL(), p.CategoryID())
}

// NewSnapshot creates a validated Snapshot from raw captured fields.
// Used by SnapshotProduct and when restoring persisted order items.
func NewSnapshot(
	productID int64,
	name string,
	price decimal.Decimal,
	imageURL *string,
	categoryID int64,
) (Snapshot, error) {
	if productID <= 0 {
		return Snapshot{}, errs.NewValueIsInvalidErrorWithCause("snapshot product id",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	if name == "" {
		return Snapshot{}, errs.NewValueIsRequiredError("snapshot product name")
	}
	if price.IsNegative() {
		return Snapshot{}, errs.NewValueIsInvalidErrorWithCause("snapshot price",
			fmt.Errorf("%s is negative", price.String()))
	}

	return Snapshot{
		productID:     productID,
		name:          name,
		price:         price.Round(2),
		imageURL:      imageURL,
		categoryID:    categoryID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Snapshot was properly constructed.
func (s Snapshot) Validate() error {
	if !s.isConstructed {
		return ErrSnapshotIsNotConstructed
	}
	return nil
}

// ProductID returns the captured product identifier.
func (s Snapshot) ProductID() int64 {
	return s.productID
}

// Name returns the display name frozen at capture time.
func (s Snapshot) Name() string {
	return s.name
}

// Price returns the unit price frozen at capture time, two-place precision.
func (s Snapshot) Price() decimal.Decimal {
	return s.price
}

// ImageURL returns the captured image reference, or nil.
func (s Snapshot) ImageURL() *string {
	return s.imageURL
}

// CategoryID returns the captured category identifier.
func (s Snapshot) CategoryID() int64 {
	return s.categoryID
}
