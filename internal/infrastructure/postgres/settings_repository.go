package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo persists the Settings singleton. The table holds a single
// row keyed by a fixed id; the currency rates live in a JSONB column.
type SettingsRepo struct {
	q Querier
}

func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

const settingsRowID = "system"

// Get returns the current settings or (nil, nil) when none were saved yet.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	var (
		s     entity.Settings
		rates []byte
	)
	err := r.q.QueryRow(context.Background(),
		`SELECT id, monthly_interest_rate, currency_rates, updated_at FROM settings WHERE id = $1`,
		settingsRowID,
	).Scan(&s.ID, &s.MonthlyInterestRate, &rates, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if len(rates) > 0 {
		if err := json.Unmarshal(rates, &s.CurrencyRates); err != nil {
			return nil, fmt.Errorf("decode currency rates: %w", err)
		}
	}
	return &s, nil
}

// Upsert writes the singleton row, creating it on first save.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	rates, err := json.Marshal(settings.CurrencyRates)
	if err != nil {
		return fmt.Errorf("encode currency rates: %w", err)
	}
	settings.ID = settingsRowID
	query := `
		INSERT INTO settings (id, monthly_interest_rate, currency_rates, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			monthly_interest_rate = EXCLUDED.monthly_interest_rate,
			currency_rates = EXCLUDED.currency_rates,
			updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(context.Background(), query,
		settings.ID, settings.MonthlyInterestRate, rates, settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
