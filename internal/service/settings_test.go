package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vitawin/referral-engine/internal/domain"
	domainmocks "github.com/vitawin/referral-engine/internal/domain/mocks"
	"go.uber.org/zap"
)

func TestSettingsService_GetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := domainmocks.NewSettingsRepositoryMock(t)
		svc := NewSettingsService(repo, zap.NewNop())

		defaults := domain.DefaultReferralSettings()
		repo.EXPECT().GetSettings(mock.Anything).Return(&defaults, nil).Once()

		settings, err := svc.GetSettings(ctx)
		require.NoError(t, err)
		assert.True(t, settings.Level1Commission.Equal(dec("20")))
	})

	t.Run("Database error", func(t *testing.T) {
		repo := domainmocks.NewSettingsRepositoryMock(t)
		svc := NewSettingsService(repo, zap.NewNop())

		repo.EXPECT().GetSettings(mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetSettings(ctx)
		assert.Error(t, err)
	})
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := domainmocks.NewSettingsRepositoryMock(t)
		svc := NewSettingsService(repo, zap.NewNop())

		settings := domain.ReferralSettings{
			Level1Commission:     dec("25"),
			Level2Commission:     dec("10"),
			Level3Commission:     dec("5"),
			BonusCoinsPercentage: dec("3"),
		}
		repo.EXPECT().UpsertSettings(mock.Anything, settings).Return(&settings, nil).Once()

		saved, err := svc.UpdateSettings(ctx, settings)
		require.NoError(t, err)
		assert.True(t, saved.Level1Commission.Equal(dec("25")))
	})

	t.Run("Invalid settings", func(t *testing.T) {
		tests := []struct {
			name     string
			settings domain.ReferralSettings
		}{
			{
				name: "Total above limit",
				settings: domain.ReferralSettings{
					Level1Commission: dec("40"), Level2Commission: dec("10"), Level3Commission: dec("1"),
				},
			},
			{
				name:     "Negative value",
				settings: domain.ReferralSettings{Level1Commission: dec("-1")},
			},
			{
				name:     "Bonus coins above 100",
				settings: domain.ReferralSettings{BonusCoinsPercentage: dec("101")},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewSettingsService(domainmocks.NewSettingsRepositoryMock(t), zap.NewNop())

				saved, err := svc.UpdateSettings(ctx, tt.settings)
				assert.ErrorIs(t, err, domain.ErrInvalidSettings)
				assert.Nil(t, saved)
			})
		}
	})

	t.Run("Database error", func(t *testing.T) {
		repo := domainmocks.NewSettingsRepositoryMock(t)
		svc := NewSettingsService(repo, zap.NewNop())

		settings := domain.DefaultReferralSettings()
		repo.EXPECT().UpsertSettings(mock.Anything, settings).Return(nil, errors.New("db error")).Once()

		_, err := svc.UpdateSettings(ctx, settings)
		assert.Error(t, err)
	})
}
