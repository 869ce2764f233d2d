package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest creates an inventory component.
type CreateInventoryItemRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Code         string          `json:"code" validate:"required,min=1,max=100"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Currency     string          `json:"currency" validate:"required,oneof=TRY USD EUR"`
	PurchaseType string          `json:"purchase_type" validate:"required,oneof=cash term"`
	TermMonths   int64           `json:"term_months" validate:"min=0"`
	Quantity     int64           `json:"quantity" validate:"min=0"`
}

// UpdateInventoryItemRequest updates an inventory component.
type UpdateInventoryItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Currency     *string          `json:"currency" validate:"omitempty,oneof=TRY USD EUR"`
	PurchaseType *string          `json:"purchase_type" validate:"omitempty,oneof=cash term"`
	TermMonths   *int64           `json:"term_months" validate:"omitempty,min=0"`
}

// AdjustQuantityRequest changes quantity on hand by a delta.
type AdjustQuantityRequest struct {
	Delta int64 `json:"delta" validate:"required"`
}

// InventoryItemResponse is the inventory component view.
type InventoryItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Currency     string          `json:"currency"`
	PurchaseType string          `json:"purchase_type"`
	TermMonths   int64           `json:"term_months"`
	Quantity     int64           `json:"quantity"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InventoryListResponse is a paginated component listing.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
