package http

import (
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
)

// timeFormat is the timestamp representation used in responses.
const timeFormat = time.RFC3339

// OrderLine is one requested product line in an order creation request.
type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest is the request body for POST /api/v1/orders.
// The display language for snapshot names comes from the lang query
// parameter, not the body.
type CreateOrderRequest struct {
	ShippingAddress string      `json:"shipping_address"`
	PhoneNumber     string      `json:"phone_number"`
	Comment         string      `json:"comment,omitempty"`
	Items           []OrderLine `json:"items"`
}

// CreateOrderResponse confirms a newly placed order.
type CreateOrderResponse struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

// CancelOrderRequest is the request body for order cancellation.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// UpdateOrderRequest is the request body for the administrative partial
// edit. Nil fields are left unchanged.
type UpdateOrderRequest struct {
	ShippingAddress *string `json:"shipping_address,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	Comment         *string `json:"comment,omitempty"`
}

// StatusResponse reports the state of an order after a transition.
type StatusResponse struct {
	OrderID      string `json:"order_id"`
	Status       string `json:"status"`
	CancelReason string `json:"cancel_reason,omitempty"`
}

// OrderItemResponse is one frozen line item of an order.
type OrderItemResponse struct {
	ProductID  int64   `json:"product_id"`
	Name       string  `json:"name"`
	Price      string  `json:"price"`
	ImageURL   *string `json:"image_url"`
	CategoryID int64   `json:"category_id"`
	Quantity   int     `json:"quantity"`
	Subtotal   string  `json:"subtotal"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	OrderID         string              `json:"order_id"`
	UserID          int64               `json:"user_id"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	PhoneNumber     string              `json:"phone_number"`
	Comment         string              `json:"comment,omitempty"`
	CancelReason    string              `json:"cancel_reason,omitempty"`
	TotalAmount     string              `json:"total_amount"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
	Items           []OrderItemResponse `json:"items"`
}

// OrderSummaryResponse is one order in a listing, without line items.
type OrderSummaryResponse struct {
	OrderID         string `json:"order_id"`
	UserID          int64  `json:"user_id"`
	Status          string `json:"status"`
	ShippingAddress string `json:"shipping_address"`
	PhoneNumber     string `json:"phone_number"`
	Comment         string `json:"comment,omitempty"`
	CancelReason    string `json:"cancel_reason,omitempty"`
	TotalAmount     string `json:"total_amount"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ListOrdersResponse is a page of orders plus its pagination envelope.
// Total counts all matching rows before pagination, Count the rows in
// this page.
type ListOrdersResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
	Total  int64                  `json:"total"`
	Count  int                    `json:"count"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// Error is the error body shared by all endpoints: a stable machine
// readable code, a human message, and field-level detail for validation
// failures.
type Error struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func toCreateOrderResponse(result commands.CreateOrderResult) CreateOrderResponse {
	return CreateOrderResponse{
		OrderID:     result.OrderID.String(),
		Status:      result.Status.String(),
		TotalAmount: result.TotalAmount.StringFixed(2),
		CreatedAt:   result.CreatedAt.Format(timeFormat),
	}
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItemResponse{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Price:      item.Price.StringFixed(2),
			ImageURL:   item.ImageURL,
			CategoryID: item.CategoryID,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal.StringFixed(2),
		}
	}

	return OrderResponse{
		OrderID:         view.ID.String(),
		UserID:          view.UserID,
		Status:          view.Status.String(),
		ShippingAddress: view.ShippingAddress,
		PhoneNumber:     view.Phone,
		Comment:         view.Comment,
		CancelReason:    view.CancelReason,
		TotalAmount:     view.TotalAmount.StringFixed(2),
		CreatedAt:       view.CreatedAt.Format(timeFormat),
		UpdatedAt:       view.UpdatedAt.Format(timeFormat),
		Items:           items,
	}
}

func toListOrdersResponse(result queries.ListOrdersResult, limit, offset int) ListOrdersResponse {
	orders := make([]OrderSummaryResponse, len(result.Orders))
	for i, summary := range result.Orders {
		orders[i] = OrderSummaryResponse{
			OrderID:         summary.ID.String(),
			UserID:          summary.UserID,
			Status:          summary.Status.String(),
			ShippingAddress: summary.ShippingAddress,
			PhoneNumber:     summary.Phone,
			Comment:         summary.Comment,
			CancelReason:    summary.CancelReason,
			TotalAmount:     summary.TotalAmount.StringFixed(2),
			CreatedAt:       summary.CreatedAt.Format(timeFormat),
			UpdatedAt:       summary.UpdatedAt.Format(timeFormat),
		}
	}

	return ListOrdersResponse{
		Orders: orders,
		Total:  result.Total,
		Count:  result.Count,
		Limit:  limit,
		Offset: offset,
	}
}
