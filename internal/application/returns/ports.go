package returns

import (
	"context"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// TxRunner runs return approval inside one transaction: the status change
// and the ledger credit commit or roll back together.
type TxRunner interface {
	RunReturn(ctx context.Context, fn func(
		returnRepo repository.ReturnRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
