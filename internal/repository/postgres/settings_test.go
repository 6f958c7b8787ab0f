package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitawin/referral-engine/internal/domain"
)

func TestSettingsRepository_GetSettings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepository(mock)
	ctx := context.Background()

	t.Run("Stored settings", func(t *testing.T) {
		updated := time.Now()
		mock.ExpectQuery(`FROM referral_settings WHERE id = \$1`).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(settingsRowColumns).
				AddRow(dec("15"), dec("7.5"), dec("2"), dec("3"), &updated))

		s, err := repo.GetSettings(ctx)
		require.NoError(t, err)
		assert.True(t, s.Level1Commission.Equal(dec("15")))
		assert.True(t, s.Level2Commission.Equal(dec("7.5")))
		assert.True(t, s.BonusCoinsPercentage.Equal(dec("3")))
		require.NotNil(t, s.UpdatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Defaults when nothing stored", func(t *testing.T) {
		mock.ExpectQuery(`FROM referral_settings`).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(settingsRowColumns))

		s, err := repo.GetSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultReferralSettings(), *s)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`FROM referral_settings`).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		s, err := repo.GetSettings(ctx)
		assert.Error(t, err)
		assert.Nil(t, s)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingsRepository_UpsertSettings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepository(mock)

	in := domain.ReferralSettings{
		Level1Commission:     dec("25"),
		Level2Commission:     dec("10"),
		Level3Commission:     dec("5"),
		BonusCoinsPercentage: dec("2"),
	}
	updated := time.Now()

	mock.ExpectQuery(`INSERT INTO referral_settings .+ ON CONFLICT \(id\) DO UPDATE`).
		WithArgs(1, decimalArg("25"), decimalArg("10"), decimalArg("5"), decimalArg("2")).
		WillReturnRows(pgxmock.NewRows(settingsRowColumns).
			AddRow(dec("25"), dec("10"), dec("5"), dec("2"), &updated))

	saved, err := repo.UpsertSettings(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, saved.Level1Commission.Equal(dec("25")))
	require.NotNil(t, saved.UpdatedAt)
	assert.Equal(t, updated, *saved.UpdatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}
