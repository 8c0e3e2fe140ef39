package services

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

// RequestedLine is one requested order position before pricing:
// a catalog reference and a quantity, nothing frozen yet.
type RequestedLine struct {
	ProductID int64
	Quantity  int
}

// OrderPricer is a domain service that turns requested lines into frozen,
// priced order items by snapshotting the referenced catalog products.
//
// Business rules:
//   - Every requested product must be present in the resolved set;
//     the first missing one fails the whole pricing with ObjectNotFoundError
//   - The product name frozen into each item is localized once, at pricing time
//   - Quantities below 1 are rejected
//   - Pricing is pure: no I/O, the caller resolves products beforehand
//
// Example usage:
//
//	pricer := NewOrderPricer()
//	items, err := pricer.Price(products, lines, kernel.LanguageRu)
//	if err != nil {
//	    // missing product or invalid quantity
//	    return
//	}
//	// items carry immutable snapshots and decimal subtotals
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price freezes the requested lines against the resolved products.
//
// Lines are processed in request order, so the ObjectNotFoundError for a
// missing product always names the first missing id. Quantity violations
// surface as InvalidOrderError from item construction.
func (p OrderPricer) Price(
	products []*product.Product,
	lines []RequestedLine,
	lang kernel.Language,
) ([]order.Item, error) {
	if len(lines) == 0 {
		return nil, errs.NewInvalidOrderError("items cannot be empty")
	}
	if err := lang.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[int64]*product.Product, len(products))
	for _, prod := range products {
		if err := prod.Validate(); err != nil {
			return nil, err
		}
		byID[prod.ID()] = prod
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		prod, ok := byID[line.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product_id", line.ProductID)
		}

		snapshot, err := order.SnapshotProduct(*prod, lang)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(snapshot, line.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
