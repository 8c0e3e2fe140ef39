package ports

import (
	"context"

	"commerce/internal/core/domain/model/product"
)

// ProductRepository defines the read contract used when composing orders.
// Products are resolved in a single batch so order creation can snapshot
// every referenced product from the same point in time.
type ProductRepository interface {
	// GetByIDs retrieves the products with the given identifiers.
	// The result may contain fewer entries than requested; callers are
	// responsible for detecting which ids were not found.
	GetByIDs(ctx context.Context, ids []int64) ([]*product.Product, error)
}
