package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPriceInput is one product override in a price list payload.
type ProductPriceInput struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Price     decimal.Decimal `json:"price"`
}

// CategoryDiscountInput is one category discount in a price list payload.
type CategoryDiscountInput struct {
	CategoryID         string          `json:"category_id" validate:"required,uuid"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// CreatePriceListRequest creates a price list.
type CreatePriceListRequest struct {
	Name                     string                  `json:"name" validate:"required,min=1,max=100"`
	ProductPrices            []ProductPriceInput     `json:"product_prices" validate:"dive"`
	CategoryDiscounts        []CategoryDiscountInput `json:"category_discounts" validate:"dive"`
	GlobalDiscountPercentage decimal.Decimal         `json:"global_discount_percentage"`
	IsDefault                bool                    `json:"is_default"`
}

// UpdatePriceListRequest updates a price list; nil fields stay unchanged.
type UpdatePriceListRequest struct {
	Name                     *string                 `json:"name" validate:"omitempty,min=1,max=100"`
	ProductPrices            []ProductPriceInput     `json:"product_prices" validate:"dive"`
	CategoryDiscounts        []CategoryDiscountInput `json:"category_discounts" validate:"dive"`
	GlobalDiscountPercentage *decimal.Decimal        `json:"global_discount_percentage"`
}

// PriceListResponse is the price list view.
type PriceListResponse struct {
	ID                       string                  `json:"id"`
	Name                     string                  `json:"name"`
	ProductPrices            []ProductPriceInput     `json:"product_prices"`
	CategoryDiscounts        []CategoryDiscountInput `json:"category_discounts"`
	GlobalDiscountPercentage decimal.Decimal         `json:"global_discount_percentage"`
	IsDefault                bool                    `json:"is_default"`
	CreatedAt                time.Time               `json:"created_at"`
	UpdatedAt                time.Time               `json:"updated_at"`
}

// PriceListListResponse is a paginated price list listing.
type PriceListListResponse struct {
	Items []PriceListResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
