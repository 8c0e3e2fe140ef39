package queries

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CountStaleCheckingOrdersQueryHandler counts orders awaiting review for
// too long. Read-only; feeds the review reminder job.
type CountStaleCheckingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountStaleCheckingOrdersQueryHandler creates a handler for stale
// order counting. Requires a GORM database connection for query execution.
func NewCountStaleCheckingOrdersQueryHandler(db *gorm.DB) CountStaleCheckingOrdersQueryHandler {
	return CountStaleCheckingOrdersQueryHandler{db: db}
}

// Handle executes the counting query.
func (h CountStaleCheckingOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountStaleCheckingOrdersQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE status = ? AND created_at < ?
	`, order.Checking.String(), cutoff).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
