package ports

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// OrderStatusChangedEvent describes a committed status transition.
// Published after the owning transaction commits so consumers never
// observe a transition that was rolled back.
type OrderStatusChangedEvent struct {
	OrderID      string
	UserID       int64
	OldStatus    order.Status
	NewStatus    order.Status
	CancelReason string
}

// OrderEventPublisher delivers order lifecycle events to interested
// consumers. Delivery is best effort: a publish failure must not fail
// the operation that produced the event.
type OrderEventPublisher interface {
	// PublishStatusChanged emits a status transition event.
	PublishStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
