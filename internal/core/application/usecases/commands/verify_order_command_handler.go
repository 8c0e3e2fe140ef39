package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// VerifyOrderResult describes the committed transition.
type VerifyOrderResult struct {
	OrderID kernel.UUID
	Status  order.Status
}

// VerifyOrderCommandHandler moves an order from "checking" to "verified".
//
// The transition is race-safe: the order is re-read inside the transaction
// and the status write carries a compare-and-set on the status that was
// read, so two concurrent transitions cannot both win.
type VerifyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewVerifyOrderCommandHandler creates a handler for order verification.
func NewVerifyOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) VerifyOrderCommandHandler {
	return VerifyOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the verification command.
// Loads the order, applies the transition on the aggregate (which enforces
// the admin rule and the state machine), persists it with a compare-and-set
// and publishes a status-change event after the commit succeeds.
func (h *VerifyOrderCommandHandler) Handle(
	ctx context.Context,
	cmd VerifyOrderCommand,
) (VerifyOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return VerifyOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return VerifyOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return VerifyOrderResult{}, err
	}

	fromStatus := aggregate.Status()
	if err = aggregate.Verify(cmd.Requester()); err != nil {
		return VerifyOrderResult{}, err
	}

	if err = repo.UpdateStatus(ctx, aggregate, fromStatus); err != nil {
		return VerifyOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return VerifyOrderResult{}, err
	}

	// best effort, never fails the committed transition
	_ = h.publisher.PublishStatusChanged(ctx, ports.OrderStatusChangedEvent{
		OrderID:   aggregate.ID().String(),
		UserID:    aggregate.UserID(),
		OldStatus: fromStatus,
		NewStatus: aggregate.Status(),
	})

	return VerifyOrderResult{
		OrderID: aggregate.ID(),
		Status:  aggregate.Status(),
	}, nil
}
