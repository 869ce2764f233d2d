package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest creates a catalog product.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id" validate:"omitempty,uuid"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock" validate:"min=0"`
	Images      []string        `json:"images"`
}

// UpdateProductRequest updates a product; nil fields stay unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
	Price       *decimal.Decimal `json:"price"`
	Images      []string         `json:"images"`
	IsActive    *bool            `json:"is_active"`
}

// ProductResponse is the product view. ResolvedPrice is filled on
// customer-facing reads: the price the calling customer would pay now.
type ProductResponse struct {
	ID            string           `json:"id"`
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	CategoryID    string           `json:"category_id,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	ResolvedPrice *decimal.Decimal `json:"resolved_price,omitempty"`
	Stock         int64            `json:"stock"`
	Images        []string         `json:"images,omitempty"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ProductListResponse is a paginated product listing.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
