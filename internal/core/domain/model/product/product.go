// Package product holds the catalog read model the ordering core consumes.
// Product rows are owned by the external catalog service; this core only
// resolves them by id to freeze their data into order item snapshots.
package product

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a read-only view of one catalog row: localized display names,
// a fixed-point price, an optional image reference, and the owning category.
type Product struct {
	id         int64
	nameUz     string
	nameRu     string
	price      decimal.Decimal
	imageURL   *string
	categoryID int64

	isConstructed bool
}

// NewProduct creates a validated Product read model.
// The id must be positive, both localized names non-empty, and the price
// non-negative.
func NewProduct(
	id int64,
	nameUz string,
	nameRu string,
	price decimal.Decimal,
	imageURL *string,
	categoryID int64,
) (Product, error) {
	p := Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setNames(nameUz, nameRu),
		p.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	p.imageURL = imageURL
	p.categoryID = categoryID
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the catalog product identifier.
func (p Product) ID() int64 {
	return p.id
}

// Name returns the display name for the given language.
// Russian selects the Russian name; everything else gets the Uzbek default.
func (p Product) Name(lang kernel.Language) string {
	if lang == kernel.LanguageRu {
		return p.nameRu
	}
	return p.nameUz
}

// Price returns the current unit price with two-place precision.
func (p Product) Price() decimal.Decimal {
	return p.price
}

// ImageURL returns the image reference, or nil when the product has none.
func (p Product) ImageURL() *string {
	return p.imageURL
}

// CategoryID returns the owning category identifier.
func (p Product) CategoryID() int64 {
	return p.categoryID
}

func (p *Product) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setNames(nameUz, nameRu string) error {
	if nameUz == "" {
		return errs.NewValueIsRequiredError("product name (uz)")
	}
	if nameRu == "" {
		return errs.NewValueIsRequiredError("product name (ru)")
	}
	p.nameUz = nameUz
	p.nameRu = nameRu
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("product price",
			fmt.Errorf("%s is negative", price.String()))
	}
	p.price = price.Round(2)
	return nil
}
