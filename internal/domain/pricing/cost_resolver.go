package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
)

// CostComponent is the costing view of an inventory item: its acquisition
// cost in native currency and how that acquisition was financed.
type CostComponent struct {
	UnitPrice    decimal.Decimal
	Currency     string // TRY, USD, EUR
	PurchaseType string // cash, term
	TermMonths   int64
}

// CostLine is one bill-of-materials line.
type CostLine struct {
	Component CostComponent
	Quantity  int64
}

// CostResult carries the two totals, rounded independently.
type CostResult struct {
	TotalTRY    decimal.Decimal
	TotalTarget decimal.Decimal
}

// ResolveCost computes the manufacturing cost of a bill of materials for a
// sale financed over targetTermMonths, in TRY and in targetCurrency.
//
// Conversion is asymmetric on purpose: foreign component costs enter TRY at
// the USD sell rate (the business pays the bank's sell side to acquire
// dollars) while the TRY total converts back to USD at the buy rate for
// reporting. Only USD is converted; any other currency's unit price is used
// as-is.
//
// Interest accrual per component: zero when targetTermMonths is zero; the
// full target term for cash purchases; only the excess beyond the
// component's own financed term for term purchases.
func ResolveCost(lines []CostLine, targetTermMonths int64, targetCurrency string, settings *entity.Settings) (CostResult, error) {
	if targetTermMonths < 0 {
		return CostResult{}, domain.ErrInvalidInput
	}
	if targetCurrency != entity.CurrencyTRY && targetCurrency != entity.CurrencyUSD {
		return CostResult{}, domain.ErrInvalidInput
	}
	if settings == nil {
		return CostResult{}, domain.ErrConfigurationMissing
	}
	usd, ok := settings.Rate(entity.CurrencyUSD)
	if !ok || !usd.Buy.IsPositive() || !usd.Sell.IsPositive() {
		return CostResult{}, domain.ErrConfigurationMissing
	}
	monthlyRate := settings.MonthlyInterestRate.Div(hundred)

	var totalTRY decimal.Decimal
	for _, line := range lines {
		if line.Quantity <= 0 {
			return CostResult{}, domain.ErrInvalidInput
		}

		base := line.Component.UnitPrice
		if line.Component.Currency == entity.CurrencyUSD {
			base = base.Mul(usd.Sell)
		}

		var interestMonths int64
		if targetTermMonths > 0 {
			switch line.Component.PurchaseType {
			case entity.PurchaseTerm:
				if excess := targetTermMonths - line.Component.TermMonths; excess > 0 {
					interestMonths = excess
				}
			default: // cash: the purchase itself was unfinanced
				interestMonths = targetTermMonths
			}
		}

		interest := base.Mul(monthlyRate).Mul(decimal.NewFromInt(interestMonths))
		totalTRY = totalTRY.Add(base.Add(interest).Mul(decimal.NewFromInt(line.Quantity)))
	}

	target := totalTRY
	if targetCurrency == entity.CurrencyUSD {
		target = totalTRY.Div(usd.Buy)
	}
	return CostResult{
		TotalTRY:    totalTRY.Round(2),
		TotalTarget: target.Round(2),
	}, nil
}
