package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReturnRequest opens a refund request against an order.
type CreateReturnRequest struct {
	OrderID      string          `json:"order_id" validate:"required,uuid"`
	Reason       string          `json:"reason" validate:"required,min=3,max=500"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

// UpdateReturnStatusRequest moves a return through its lifecycle (admin).
type UpdateReturnStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=requested approved rejected completed"`
}

// ReturnResponse is the return view.
type ReturnResponse struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	CustomerID   string          `json:"customer_id"`
	Reason       string          `json:"reason"`
	Status       string          `json:"status"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ReturnListResponse is a paginated return listing.
type ReturnListResponse struct {
	Items []ReturnResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
