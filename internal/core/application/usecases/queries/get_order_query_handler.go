package queries

import (
	"context"
	"database/sql"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// Line items are fetched with an explicit second query, never an implicit join.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items.
// Returns ObjectNotFoundError for a missing order and ForbiddenError when
// a customer asks for somebody else's order. Existence is checked before
// ownership, so a missing order is always reported as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	view, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	if !order.ViewableBy(query.Requester(), view.UserID) {
		return OrderView{}, errs.NewForbiddenError("view order")
	}

	items, total, err := fetchOrderItems(ctx, h.db, view.ID)
	if err != nil {
		return OrderView{}, err
	}
	view.Items = items
	view.TotalAmount = total

	return view, nil
}

func (h GetOrderQueryHandler) fetchOrder(ctx context.Context, orderID kernel.UUID) (OrderView, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			shipping_address,
			phone,
			comment,
			cancel_reason,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var view OrderView
	var id uuid.UUID
	var status string

	err := row.Scan(
		&id,
		&view.UserID,
		&status,
		&view.ShippingAddress,
		&view.Phone,
		&view.Comment,
		&view.CancelReason,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order_id", orderID.String())
	}
	if err != nil {
		return OrderView{}, err
	}

	view.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}

	view.Status, err = order.StatusFromString(status)
	if err != nil {
		return OrderView{}, err
	}

	return view, nil
}
