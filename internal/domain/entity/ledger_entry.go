package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger entry types and sources.
const (
	LedgerDebit  = "debit"  // customer owes more
	LedgerCredit = "credit" // customer paid or was refunded

	LedgerSourceOrder   = "order"
	LedgerSourcePayment = "payment"
	LedgerSourceReturn  = "return"
	LedgerSourceManual  = "manual"
)

// LedgerEntry is one movement on a customer's account. Balance is the
// running balance after the entry (positive means the customer owes).
type LedgerEntry struct {
	ID          string
	CustomerID  string
	EntryType   string // debit, credit
	Amount      decimal.Decimal
	Description string
	Source      string // order, payment, return, manual
	SourceID    string // referenced order/return id, empty for manual
	Balance     decimal.Decimal
	CreatedAt   time.Time
}
