package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// CancelOrderResult describes the committed cancellation.
type CancelOrderResult struct {
	OrderID      kernel.UUID
	Status       order.Status
	CancelReason string
}

// CancelOrderCommandHandler moves an order to the terminal "cancelled"
// status, recording the reason. Admins may cancel any active order, the
// owner may cancel their own; both rules live on the aggregate.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// The status write carries a compare-and-set on the status read inside the
// transaction; losing that race surfaces as an invalid transition.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CancelOrderResult{}, err
	}

	fromStatus := aggregate.Status()
	if err = aggregate.Cancel(cmd.Requester(), cmd.Reason()); err != nil {
		return CancelOrderResult{}, err
	}

	if err = repo.UpdateStatus(ctx, aggregate, fromStatus); err != nil {
		return CancelOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	// best effort, never fails the committed transition
	_ = h.publisher.PublishStatusChanged(ctx, ports.OrderStatusChangedEvent{
		OrderID:      aggregate.ID().String(),
		UserID:       aggregate.UserID(),
		OldStatus:    fromStatus,
		NewStatus:    aggregate.Status(),
		CancelReason: aggregate.CancelReason(),
	})

	return CancelOrderResult{
		OrderID:      aggregate.ID(),
		Status:       aggregate.Status(),
		CancelReason: aggregate.CancelReason(),
	}, nil
}
