// Package costing exposes manufacturing cost estimation over the component
// cost resolver.
package costing

import (
	"github.com/rs/zerolog"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/pricing"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// UseCase resolves component references and runs the cost resolver.
//
// Error policy is deliberately split: missing global configuration fails
// hard (this feeds financial reporting), while an unknown component
// reference is skipped with a warning and contributes zero, matching the
// permissive aggregation the business runs on. The flag below makes the
// second half of that policy explicit.
type UseCase struct {
	itemRepo     repository.InventoryItemRepository
	settingsRepo repository.SettingsRepository
	strictItems  bool // true: unknown component refs fail with ErrNotFound
	log          zerolog.Logger
}

// NewUseCase builds the use case. strictItems selects whether unknown
// component references fail the estimate or are skipped.
func NewUseCase(itemRepo repository.InventoryItemRepository, settingsRepo repository.SettingsRepository, strictItems bool, log zerolog.Logger) *UseCase {
	return &UseCase{itemRepo: itemRepo, settingsRepo: settingsRepo, strictItems: strictItems, log: log}
}

// Estimate computes the bill-of-materials cost for the requested financing
// term and target currency.
func (uc *UseCase) Estimate(in dto.EstimateCostRequest) (*dto.EstimateCostResponse, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrConfigurationMissing
	}

	lines := make([]pricing.CostLine, 0, len(in.Components))
	for _, c := range in.Components {
		if c.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(c.InventoryItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			if uc.strictItems {
				return nil, domain.ErrNotFound
			}
			uc.log.Warn().Str("inventory_item_id", c.InventoryItemID).Msg("cost estimate skipping unknown component")
			continue
		}
		lines = append(lines, pricing.CostLine{
			Component: pricing.CostComponent{
				UnitPrice:    item.UnitPrice,
				Currency:     item.Currency,
				PurchaseType: item.PurchaseType,
				TermMonths:   item.TermMonths,
			},
			Quantity: c.Quantity,
		})
	}

	result, err := pricing.ResolveCost(lines, in.TargetTerm, in.TargetCurrency, settings)
	if err != nil {
		return nil, err
	}
	return &dto.EstimateCostResponse{
		TotalCostTL:     result.TotalTRY.StringFixed(2),
		TotalCostTarget: result.TotalTarget.StringFixed(2),
	}, nil
}
