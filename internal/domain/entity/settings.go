package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency codes handled by the system. TRY is the local currency.
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// CurrencyRate holds the institution's buy and sell rates for a foreign
// currency against TRY. Costs in foreign currency convert to TRY at the
// sell rate; TRY totals convert back at the buy rate.
type CurrencyRate struct {
	Code string          `json:"code"` // USD, EUR
	Buy  decimal.Decimal `json:"buy"`  // > 0
	Sell decimal.Decimal `json:"sell"` // > 0
}

// Settings is the system-wide configuration singleton. The pricing resolver
// tolerates its absence (no interest, no FX); the costing resolver requires
// it.
type Settings struct {
	ID                  string
	MonthlyInterestRate decimal.Decimal // percentage, e.g. 5 means 5%
	CurrencyRates       []CurrencyRate
	UpdatedAt           time.Time
}

// Rate looks up the rate entry for a currency code.
func (s *Settings) Rate(code string) (CurrencyRate, bool) {
	for _, r := range s.CurrencyRates {
		if r.Code == code {
			return r, true
		}
	}
	return CurrencyRate{}, false
}
