package service

import (
	"context"
	"fmt"

	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/mlm"
	"go.uber.org/zap"
)

// SettingsService реализует domain.SettingsService
type SettingsService struct {
	settingsRepo domain.SettingsRepository
	logger       *zap.Logger
}

// NewSettingsService создает новый SettingsService
func NewSettingsService(settingsRepo domain.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings возвращает действующие реферальные настройки
func (s *SettingsService) GetSettings(ctx context.Context) (*domain.ReferralSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings service: failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings проверяет и сохраняет новые настройки.
// Изменения действуют только для заказов, обработанных после сохранения.
func (s *SettingsService) UpdateSettings(ctx context.Context, settings domain.ReferralSettings) (*domain.ReferralSettings, error) {
	if err := mlm.ValidateSettings(settings); err != nil {
		return nil, err
	}

	saved, err := s.settingsRepo.UpsertSettings(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("settings service: failed to save settings: %w", err)
	}

	s.logger.Info("referral settings updated",
		zap.String("level1", saved.Level1Commission.String()),
		zap.String("level2", saved.Level2Commission.String()),
		zap.String("level3", saved.Level3Commission.String()),
		zap.String("bonus_coins", saved.BonusCoinsPercentage.String()),
	)

	return saved, nil
}
