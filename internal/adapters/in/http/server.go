// Package http exposes the ordering use cases over a REST API.
// It coordinates between HTTP handlers and application use cases:
// requests are translated into commands and queries, results and errors
// back into the wire contract.
package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the ordering API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	verifyOrderHandler   commands.VerifyOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	verifyOrderHandler commands.VerifyOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		verifyOrderHandler:   verifyOrderHandler,
		cancelOrderHandler:   cancelOrderHandler,
		completeOrderHandler: completeOrderHandler,
		updateOrderHandler:   updateOrderHandler,
		deleteOrderHandler:   deleteOrderHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. Every route requires a
// resolved principal.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", PrincipalMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/verify", s.VerifyOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewForbiddenError("create order"))
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    CodeValidationError,
			Message: "Invalid request body",
		})
	}

	address, err := kernel.NewShippingAddress(request.ShippingAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	phone, err := kernel.NewPhone(request.PhoneNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]services.RequestedLine, len(request.Items))
	for i, item := range request.Items {
		lines[i] = services.RequestedLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	lang := kernel.ParseLanguage(ctx.QueryParam("lang"))

	cmd, err := commands.NewCreateOrderCommand(principal, address, phone, request.Comment, lines, lang)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCreateOrderResponse(result))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with items.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewForbiddenError("view order"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// ListOrders handles GET /api/v1/orders - administrative listing with
// filters, sorting and pagination.
func (s *Server) ListOrders(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewForbiddenError("list orders"))
	}

	filter, err := parseListFilter(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(principal, filter)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListOrdersResponse(result, query.Limit(), query.Offset()))
}

// VerifyOrder handles POST /api/v1/orders/:id/verify - admin approval.
func (s *Server) VerifyOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewForbiddenError("verify order"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewVerifyOrderCommand(orderID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.verifyOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancellation by
// the owner or an admin, with a mandatory reason.
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewForbiddenError("cancel order"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    CodeValidationError,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, principal, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{
		OrderID:      result.OrderID.String(),
		Status:       result.Status.String(),
		CancelReason: result.CancelReason,
	})
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - admin completion.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewForbiddenError("complete order"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id - administrative partial edit
// of delivery details. Status and items are never touched here.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewForbiddenError("update order"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    CodeValidationError,
			Message: "Invalid request body",
		})
	}

	var address *kernel.ShippingAddress
	if request.ShippingAddress != nil {
		parsed, err := kernel.NewShippingAddress(*request.ShippingAddress)
		if err != nil {
			return respondError(ctx, err)
		}
		address = &parsed
	}

	var phone *kernel.Phone
	if request.PhoneNumber != nil {
		parsed, err := kernel.NewPhone(*request.PhoneNumber)
		if err != nil {
			return respondError(ctx, err)
		}
		phone = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, principal, address, phone, request.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - administrative hard
// delete; items are removed together with the order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondError(ctx, errs.NewForbiddenError("delete order"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, principal)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("order_id", err)
	}
	return orderID, nil
}

// parseListFilter reads the listing query parameters. Numeric and date
// parameters must parse; range checks happen in the query constructor.
func parseListFilter(ctx echo.Context) (queries.ListOrdersFilter, error) {
	filter := queries.ListOrdersFilter{
		Status: ctx.QueryParam("status"),
		Sort:   ctx.QueryParam("sort"),
	}

	if raw := ctx.QueryParam("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return queries.ListOrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("userId", err)
		}
		filter.UserID = &userID
	}

	if raw := ctx.QueryParam("dateFrom"); raw != "" {
		dateFrom, err := parseDate(raw, "dateFrom")
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.DateFrom = &dateFrom
	}

	if raw := ctx.QueryParam("dateTo"); raw != "" {
		dateTo, err := parseDate(raw, "dateTo")
		if err != nil {
			return queries.ListOrdersFilter{}, err
		}
		filter.DateTo = &dateTo
	}

	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return queries.ListOrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("limit", err)
		}
		filter.Limit = limit
	}

	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return queries.ListOrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("offset", err)
		}
		filter.Offset = offset
	}

	return filter, nil
}

// parseDate accepts RFC3339 timestamps and plain dates.
func parseDate(raw, paramName string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName,
		fmt.Errorf("%q is not a valid timestamp", raw))
}
