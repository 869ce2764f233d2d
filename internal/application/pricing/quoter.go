// Package pricing (application) adapts the pure resolvers to stored data:
// it fetches the effective price list and settings once per call and quotes
// any number of products against them.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	domainpricing "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/pricing"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// Quoter resolves customer-facing prices. Reference data is re-read on every
// Snapshot: prices reflect whatever configuration existed at the moment of
// the read, nothing stronger.
type Quoter struct {
	priceListRepo repository.PriceListRepository
	settingsRepo  repository.SettingsRepository
}

// NewQuoter builds the quoting service.
func NewQuoter(priceListRepo repository.PriceListRepository, settingsRepo repository.SettingsRepository) *Quoter {
	return &Quoter{priceListRepo: priceListRepo, settingsRepo: settingsRepo}
}

// Snapshot is the pricing configuration captured for one request: the
// buyer's effective list (own, else default, else none) and the settings
// singleton (may be nil).
type Snapshot struct {
	buyer    domainpricing.Buyer
	list     *entity.PriceList
	settings *entity.Settings
}

// SnapshotFor captures the pricing configuration for a customer. A nil
// customer snapshots an anonymous cash buyer against the default list.
func (q *Quoter) SnapshotFor(customer *entity.Customer) (*Snapshot, error) {
	buyer := domainpricing.BuyerOf(customer)

	var list *entity.PriceList
	var err error
	if buyer.PriceListID != "" {
		list, err = q.priceListRepo.GetByID(buyer.PriceListID)
		if err != nil {
			return nil, err
		}
	}
	if list == nil {
		list, err = q.priceListRepo.GetDefault()
		if err != nil {
			return nil, err
		}
	}

	settings, err := q.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	return &Snapshot{buyer: buyer, list: list, settings: settings}, nil
}

// Quote resolves the price the snapshot's buyer pays for product.
func (s *Snapshot) Quote(product *entity.Product) (decimal.Decimal, error) {
	return domainpricing.ResolvePrice(product, s.buyer, s.list, s.settings)
}
