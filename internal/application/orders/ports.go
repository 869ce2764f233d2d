package orders

import (
	"context"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// TxRunner runs order work inside one database transaction: stock
// decrement, order persistence and the ledger debit commit or roll back
// together.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
