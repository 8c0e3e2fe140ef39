package queries

import (
	"errors"
	"time"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrCountStaleCheckingOrdersQueryIsNotConstructed = errors.New(
		"CountStaleCheckingOrdersQuery must be created via NewCountStaleCheckingOrdersQuery constructor",
	)
)

// CountStaleCheckingOrdersQuery counts orders that have been sitting in
// "checking" longer than a threshold. Used by the review reminder job.
type CountStaleCheckingOrdersQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCountStaleCheckingOrdersQuery creates a query counting stale
// unreviewed orders. The threshold must be positive.
func NewCountStaleCheckingOrdersQuery(olderThan time.Duration) (CountStaleCheckingOrdersQuery, error) {
	if olderThan <= 0 {
		return CountStaleCheckingOrdersQuery{}, errs.NewValueIsInvalidError("older_than")
	}

	return CountStaleCheckingOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountStaleCheckingOrdersQueryIsNotConstructed if validation fails.
func (q CountStaleCheckingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountStaleCheckingOrdersQueryIsNotConstructed)
}

// OlderThan returns the staleness threshold.
func (q CountStaleCheckingOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}
