// Package ports defines repository and messaging interfaces for the ordering
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and mutating order entities
// together with their frozen line items.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are immutable after creation and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists a status transition with a compare-and-set on
	// the previous status. If another writer moved the order away from
	// fromStatus first, no row is updated and InvalidOrderError is
	// returned so the caller can treat the transition as stale.
	UpdateStatus(ctx context.Context, aggregate *order.Order, fromStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including its line items, or
	// ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its line items from storage.
	// Returns ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
