package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// SettingsRepository defines the persistence port for the Settings
// singleton. Get returns (nil, nil) when no settings row exists yet; the
// pricing path treats that as "no interest, no FX".
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}
