package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest records a payment received from a customer (admin).
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"max=500"`
}

// LedgerEntryResponse is one account movement view.
type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	EntryType   string          `json:"entry_type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Source      string          `json:"source"`
	SourceID    string          `json:"source_id,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerResponse is a customer's statement: entries plus current balance.
type LedgerResponse struct {
	CustomerID string                `json:"customer_id"`
	Balance    decimal.Decimal       `json:"balance"`
	Entries    []LedgerEntryResponse `json:"entries"`
	Page       PageResponse          `json:"page"`
}
