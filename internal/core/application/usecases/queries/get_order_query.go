// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/auth"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its frozen line items.
// Admins may view any order; customers only their own.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, requester)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	requester auth.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
// Validates that the order ID and the requesting principal are constructed.
func NewGetOrderQuery(orderID kernel.UUID, requester auth.Principal) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setRequester(requester),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Requester returns the principal requesting the view.
func (q GetOrderQuery) Requester() auth.Principal {
	return q.requester
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setRequester(requester auth.Principal) error {
	if err := requester.Validate(); err != nil {
		return err
	}

	q.requester = requester
	return nil
}

// OrderItemView is one frozen line in the order read model.
type OrderItemView struct {
	ProductID  int64
	Name       string
	Price      decimal.Decimal
	ImageURL   *string
	CategoryID int64
	Quantity   int
	Subtotal   decimal.Decimal
}

// OrderView is the full order read model returned by GetOrderQuery.
// TotalAmount is recomputed from the stored line subtotals.
type OrderView struct {
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
	Items           []OrderItemView
}
