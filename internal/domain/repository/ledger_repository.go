package repository

import (
	"github.com/shopspring/decimal"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
)

// LedgerRepository defines the persistence port for customer account
// movements. Balances are running: each entry stores the balance after it.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	// LastBalance returns the balance after the customer's most recent
	// entry, zero when the account has no movements yet.
	LastBalance(customerID string) (decimal.Decimal, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.LedgerEntry, error)
}
