package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// CompleteOrderResult describes the committed transition.
type CompleteOrderResult struct {
	OrderID kernel.UUID
	Status  order.Status
}

// CompleteOrderCommandHandler moves an order from "verified" to the
// terminal "done" status.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command.
// The status write carries a compare-and-set on the status read inside the
// transaction; losing that race surfaces as an invalid transition.
func (h *CompleteOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteOrderCommand,
) (CompleteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CompleteOrderResult{}, err
	}

	fromStatus := aggregate.Status()
	if err = aggregate.Complete(cmd.Requester()); err != nil {
		return CompleteOrderResult{}, err
	}

	if err = repo.UpdateStatus(ctx, aggregate, fromStatus); err != nil {
		return CompleteOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteOrderResult{}, err
	}

	// best effort, never fails the committed transition
	_ = h.publisher.PublishStatusChanged(ctx, ports.OrderStatusChangedEvent{
		OrderID:   aggregate.ID().String(),
		UserID:    aggregate.UserID(),
		OldStatus: fromStatus,
		NewStatus: aggregate.Status(),
	})

	return CompleteOrderResult{
		OrderID: aggregate.ID(),
		Status:  aggregate.Status(),
	}, nil
}
