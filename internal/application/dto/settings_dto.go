package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRateInput is one FX rate in a settings payload.
type CurrencyRateInput struct {
	Code string          `json:"code" validate:"required,oneof=USD EUR"`
	Buy  decimal.Decimal `json:"buy"`
	Sell decimal.Decimal `json:"sell"`
}

// UpdateSettingsRequest upserts the configuration singleton.
type UpdateSettingsRequest struct {
	MonthlyInterestRate decimal.Decimal     `json:"monthly_interest_rate"`
	CurrencyRates       []CurrencyRateInput `json:"currency_rates" validate:"dive"`
}

// SettingsResponse is the settings view.
type SettingsResponse struct {
	MonthlyInterestRate decimal.Decimal     `json:"monthly_interest_rate"`
	CurrencyRates       []CurrencyRateInput `json:"currency_rates"`
	UpdatedAt           time.Time           `json:"updated_at"`
}
