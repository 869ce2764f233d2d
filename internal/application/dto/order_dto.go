package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested order line. Prices are never taken from
// the client; they are resolved server-side at creation time.
type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest places an order for the calling customer.
type CreateOrderRequest struct {
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Note  string           `json:"note" validate:"max=500"`
}

// UpdateOrderStatusRequest moves an order through its lifecycle (admin).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// OrderItemResponse is one order line view.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the order view.
type OrderResponse struct {
	ID         string              `json:"id"`
	Number     string              `json:"number"`
	CustomerID string              `json:"customer_id"`
	Status     string              `json:"status"`
	Total      decimal.Decimal     `json:"total"`
	Note       string              `json:"note,omitempty"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderListResponse is a paginated order listing.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
