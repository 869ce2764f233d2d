package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase types for inventory components.
const (
	PurchaseCash = "cash" // paid upfront, accrues interest for the full target term
	PurchaseTerm = "term" // financed over TermMonths, accrues only the excess
)

// InventoryItem is a raw material or component used in manufacturing cost
// estimation. UnitPrice is in the item's native Currency.
type InventoryItem struct {
	ID           string
	Name         string
	Code         string // unique stock code
	UnitPrice    decimal.Decimal
	Currency     string // TRY, USD, EUR
	PurchaseType string // cash, term
	TermMonths   int64  // own financing term, 0 for cash purchases
	Quantity     int64  // on hand
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
