package queries

import (
	"context"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves filtered order pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The pre-pagination total and the page come from the same filter set.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Only administrators may list orders. Each row's total amount is summed
// from stored line subtotals inside the page query.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResult, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResult{}, err
	}

	if !query.Requester().IsAdmin() {
		return ListOrdersResult{}, errs.NewForbiddenError("list orders")
	}

	where, args := buildOrderFilter(query)

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders"+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersResult{}, err
	}

	pageArgs := append(args, query.Limit(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			shipping_address,
			phone,
			comment,
			cancel_reason,
			COALESCE((SELECT SUM(i.subtotal) FROM order_items i WHERE i.order_id = orders.id), 0) AS total_amount,
			created_at,
			updated_at
		FROM orders`+where+`
		ORDER BY `+query.OrderBy()+`
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersResult{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryView, 0, query.Limit())

	for rows.Next() {
		var view OrderSummaryView
		var id uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&view.UserID,
			&status,
			&view.ShippingAddress,
			&view.Phone,
			&view.Comment,
			&view.CancelReason,
			&view.TotalAmount,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return ListOrdersResult{}, err
		}

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return ListOrdersResult{}, err
		}

		view.Status, err = order.StatusFromString(status)
		if err != nil {
			return ListOrdersResult{}, err
		}

		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersResult{}, err
	}

	return ListOrdersResult{
		Orders: orders,
		Total:  total,
		Count:  len(orders),
	}, nil
}

// buildOrderFilter renders the WHERE clause shared by the count and page
// queries.
func buildOrderFilter(query ListOrdersQuery) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}
	if userID := query.UserID(); userID != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, *userID)
	}
	if dateFrom := query.DateFrom(); dateFrom != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *dateFrom)
	}
	if dateTo := query.DateTo(); dateTo != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *dateTo)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
