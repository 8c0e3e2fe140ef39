package queries

import (
	"errors"
	"math"
	"strings"
	"time"

	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// sortableOrderColumns whitelists the fields a caller may sort the order
// list by. Anything else in the sort expression is silently ignored.
var sortableOrderColumns = map[string]string{
	"id":         "id",
	"status":     "status",
	"user_id":    "user_id",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// ListOrdersFilter carries the raw listing parameters as they arrive from
// the transport layer. Zero values mean "not set".
type ListOrdersFilter struct {
	Status   string
	UserID   *int64
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
	Sort     string
}

// ListOrdersQuery retrieves a filtered, sorted page of orders.
// Listing is an administrative operation.
//
// Example:
//
//	query, err := NewListOrdersQuery(requester, ListOrdersFilter{
//	    Status: "checking",
//	    Sort:   "-created_at,status",
//	})
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	requester auth.Principal
	status    *order.Status
	userID    *int64
	dateFrom  *time.Time
	dateTo    *time.Time
	limit     int
	offset    int
	orderBy   string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders.
// Normalizes the filter: an absent limit becomes 20, a limit outside 1..100
// or a negative offset is rejected, an unknown status name is rejected, and
// the sort expression is parsed with unknown fields dropped.
func NewListOrdersQuery(requester auth.Principal, filter ListOrdersFilter) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRequester(requester),
		query.setStatus(filter.Status),
		query.setUserID(filter.UserID),
		query.setLimit(filter.Limit),
		query.setOffset(filter.Offset),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	query.dateFrom = filter.DateFrom
	query.dateTo = filter.DateTo
	query.orderBy = parseSortExpression(filter.Sort)

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Requester returns the principal requesting the listing.
func (q ListOrdersQuery) Requester() auth.Principal {
	return q.requester
}

// Status returns the status filter, or nil when not filtering by status.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// UserID returns the owner filter, or nil when not filtering by owner.
func (q ListOrdersQuery) UserID() *int64 {
	return q.userID
}

// DateFrom returns the inclusive lower creation-time bound, or nil.
func (q ListOrdersQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive upper creation-time bound, or nil.
func (q ListOrdersQuery) DateTo() *time.Time {
	return q.dateTo
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows skipped before the page.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

// OrderBy returns the normalized SQL ORDER BY clause body.
func (q ListOrdersQuery) OrderBy() string {
	return q.orderBy
}

func (q *ListOrdersQuery) setRequester(requester auth.Principal) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	q.requester = requester
	return nil
}

func (q *ListOrdersQuery) setStatus(status string) error {
	if status == "" {
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	q.status = &parsed
	return nil
}

func (q *ListOrdersQuery) setUserID(userID *int64) error {
	if userID == nil {
		return nil
	}
	if *userID <= 0 {
		return errs.NewValueIsInvalidError("user_id")
	}

	q.userID = userID
	return nil
}

func (q *ListOrdersQuery) setLimit(limit int) error {
	if limit == 0 {
		q.limit = defaultListLimit
		return nil
	}
	if limit < 1 || limit > maxListLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxListLimit)
	}

	q.limit = limit
	return nil
}

func (q *ListOrdersQuery) setOffset(offset int) error {
	if offset < 0 {
		return errs.NewValueIsOutOfRangeError("offset", offset, 0, math.MaxInt32)
	}

	q.offset = offset
	return nil
}

// parseSortExpression turns a comma-separated sort expression into an
// ORDER BY clause body. A `-` prefix means descending; fields outside the
// whitelist are dropped. An expression with nothing usable falls back to
// newest-first.
func parseSortExpression(sort string) string {
	clauses := make([]string, 0)

	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		direction := "ASC"

		if strings.HasPrefix(field, "-") {
			field = field[1:]
			direction = "DESC"
		}

		column, ok := sortableOrderColumns[field]
		if !ok {
			continue
		}

		clauses = append(clauses, column+" "+direction)
	}

	if len(clauses) == 0 {
		return "created_at DESC"
	}

	return strings.Join(clauses, ", ")
}

// OrderSummaryView is one order in the listing read model: the order fields
// without line items, with the total recomputed from stored subtotals.
type OrderSummaryView struct {
	ID              kernel.UUID
	UserID          int64
	Status          order.Status
	ShippingAddress string
	Phone           string
	Comment         string
	CancelReason    string
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ListOrdersResult is the listing page plus its pagination envelope.
// Total is the pre-pagination match count, Count the page size actually
// returned.
type ListOrdersResult struct {
	Orders []OrderSummaryView
	Total  int64
	Count  int
}
