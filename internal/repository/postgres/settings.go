package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitawin/referral-engine/internal/domain"
)

// settingsRowID идентификатор единственной строки настроек
const settingsRowID = 1

const selectSettingsSQL = `SELECT level1_commission, level2_commission, level3_commission,
		bonus_coins_percentage, updated_at
	 FROM referral_settings
	 WHERE id = $1`

// SettingsRepository реализует domain.SettingsRepository
type SettingsRepository struct {
	db DBTX
}

// NewSettingsRepository создает новый SettingsRepository
func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// loadSettings читает настройки; если строки нет, возвращает значения по умолчанию
func loadSettings(ctx context.Context, db DBTX) (*domain.ReferralSettings, error) {
	s := &domain.ReferralSettings{}
	err := db.QueryRow(ctx, selectSettingsSQL, settingsRowID).Scan(
		&s.Level1Commission, &s.Level2Commission, &s.Level3Commission,
		&s.BonusCoinsPercentage, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := domain.DefaultReferralSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("repository: failed to get referral settings: %w", err)
	}

	return s, nil
}

// GetSettings получает текущие реферальные настройки
func (r *SettingsRepository) GetSettings(ctx context.Context) (*domain.ReferralSettings, error) {
	return loadSettings(ctx, r.db)
}

// UpsertSettings сохраняет настройки в единственную строку таблицы
func (r *SettingsRepository) UpsertSettings(ctx context.Context, settings domain.ReferralSettings) (*domain.ReferralSettings, error) {
	saved := &domain.ReferralSettings{}

	err := r.db.QueryRow(ctx,
		`INSERT INTO referral_settings
			(id, level1_commission, level2_commission, level3_commission, bonus_coins_percentage, updated_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (id) DO UPDATE SET
			level1_commission = EXCLUDED.level1_commission,
			level2_commission = EXCLUDED.level2_commission,
			level3_commission = EXCLUDED.level3_commission,
			bonus_coins_percentage = EXCLUDED.bonus_coins_percentage,
			updated_at = EXCLUDED.updated_at
		 RETURNING level1_commission, level2_commission, level3_commission, bonus_coins_percentage, updated_at`,
		settingsRowID, settings.Level1Commission, settings.Level2Commission,
		settings.Level3Commission, settings.BonusCoinsPercentage,
	).Scan(&saved.Level1Commission, &saved.Level2Commission, &saved.Level3Commission,
		&saved.BonusCoinsPercentage, &saved.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to save referral settings: %w", err)
	}

	return saved, nil
}
