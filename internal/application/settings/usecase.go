// Package settings manages the system configuration singleton: the monthly
// interest rate and the FX rate table both resolvers read.
package settings

import (
	"time"

	"github.com/google/uuid"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/dto"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

// UseCase covers reading and upserting settings.
type UseCase struct {
	repo repository.SettingsRepository
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.SettingsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get returns current settings, or nil when none were configured yet.
func (uc *UseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toResponse(s), nil
}

// Update upserts the singleton. Rates must be strictly positive and the
// interest rate non-negative.
func (uc *UseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.MonthlyInterestRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	rates := make([]entity.CurrencyRate, 0, len(in.CurrencyRates))
	for _, r := range in.CurrencyRates {
		if !r.Buy.IsPositive() || !r.Sell.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		rates = append(rates, entity.CurrencyRate{Code: r.Code, Buy: r.Buy, Sell: r.Sell})
	}

	current, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	s := &entity.Settings{
		MonthlyInterestRate: in.MonthlyInterestRate,
		CurrencyRates:       rates,
		UpdatedAt:           time.Now(),
	}
	if current != nil {
		s.ID = current.ID
	} else {
		s.ID = uuid.New().String()
	}
	if err := uc.repo.Upsert(s); err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

func toResponse(s *entity.Settings) *dto.SettingsResponse {
	rates := make([]dto.CurrencyRateInput, 0, len(s.CurrencyRates))
	for _, r := range s.CurrencyRates {
		rates = append(rates, dto.CurrencyRateInput{Code: r.Code, Buy: r.Buy, Sell: r.Sell})
	}
	return &dto.SettingsResponse{
		MonthlyInterestRate: s.MonthlyInterestRate,
		CurrencyRates:       rates,
		UpdatedAt:           s.UpdatedAt,
	}
}
