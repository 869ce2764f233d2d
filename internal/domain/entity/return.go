package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return statuses.
const (
	ReturnRequested = "requested"
	ReturnApproved  = "approved"
	ReturnRejected  = "rejected"
	ReturnCompleted = "completed"
)

// Return is a customer refund request against a delivered order. Approval
// credits the refund amount to the customer's ledger.
type Return struct {
	ID           string
	OrderID      string
	CustomerID   string
	Reason       string
	Status       string
	RefundAmount decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidReturnStatus reports whether s is a known return status.
func ValidReturnStatus(s string) bool {
	switch s {
	case ReturnRequested, ReturnApproved, ReturnRejected, ReturnCompleted:
		return true
	}
	return false
}
