package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// CreateOrderResult is the summary returned after a successful creation.
type CreateOrderResult struct {
	OrderID     kernel.UUID
	Status      order.Status
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the requested products, freezes them into priced line items and
// persists the order in "checking" status, all inside one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %s", result.OrderID, result.TotalAmount)
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.OrderPricer
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory giving access to both product and order repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle processes the order creation command.
// Products are resolved in a single batch so every snapshot comes from the
// same point in time; a missing product fails the whole request. Any error
// after Begin rolls the transaction back, leaving no partial order rows.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := uow.ProductRepository().GetByIDs(ctx, distinctProductIDs(cmd.Lines()))
	if err != nil {
		return CreateOrderResult{}, err
	}

	items, err := h.pricer.Price(products, cmd.Lines(), cmd.Lang())
	if err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Requester().ID(),
		cmd.ShippingAddress(),
		cmd.Phone(),
		cmd.Comment(),
		items,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:     aggregate.ID(),
		Status:      aggregate.Status(),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
	}, nil
}

func distinctProductIDs(lines []services.RequestedLine) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))

	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	return ids
}
