package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item. Price is the base list price in TRY;
// the price a given customer pays is computed by the pricing resolver.
type Product struct {
	ID          string
	SKU         string // unique code
	Name        string
	Description string
	CategoryID  string
	Price       decimal.Decimal // base sale price (TRY)
	Stock       int64
	Images      []string // stored paths, upload pipeline is external
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
