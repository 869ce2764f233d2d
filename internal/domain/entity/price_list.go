package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductPrice is a product-specific override inside a price list. It fully
// replaces the base price; no discount is layered on top of it.
type ProductPrice struct {
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
}

// CategoryDiscount is a percentage discount for every product of a category.
type CategoryDiscount struct {
	CategoryID         string          `json:"category_id"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"` // 0..100
}

// PriceList is a named bundle of pricing rules assigned to customers.
// At most one list is the system-wide default.
type PriceList struct {
	ID                       string
	Name                     string // unique
	ProductPrices            []ProductPrice
	CategoryDiscounts        []CategoryDiscount
	GlobalDiscountPercentage decimal.Decimal // 0..100, fallback when no category entry matches
	IsDefault                bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// ProductPriceFor returns the product-specific override, if any.
func (l *PriceList) ProductPriceFor(productID string) (decimal.Decimal, bool) {
	for _, pp := range l.ProductPrices {
		if pp.ProductID == productID {
			return pp.Price, true
		}
	}
	return decimal.Decimal{}, false
}

// CategoryDiscountFor returns the category discount percentage, if any.
func (l *PriceList) CategoryDiscountFor(categoryID string) (decimal.Decimal, bool) {
	if categoryID == "" {
		return decimal.Decimal{}, false
	}
	for _, cd := range l.CategoryDiscounts {
		if cd.CategoryID == categoryID {
			return cd.DiscountPercentage, true
		}
	}
	return decimal.Decimal{}, false
}
