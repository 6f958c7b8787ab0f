package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitawin/referral-engine/internal/domain"
)

var levelRowColumns = []string{
	"level", "name", "description", "percentage",
	"required_referrals", "required_personal_volume", "required_group_volume",
}

func TestLevelRepository_ListLevels(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLevelRepository(mock)

	rows := pgxmock.NewRows(levelRowColumns).
		AddRow(1, "Актив", "", dec("25"), 0, dec("0"), dec("0")).
		AddRow(2, "Актив +", "", dec("5"), 1, dec("0"), dec("0"))

	mock.ExpectQuery(`FROM mlm_levels ORDER BY level`).
		WillReturnRows(rows)

	levels, err := repo.ListLevels(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "Актив", levels[0].Name)
	assert.Equal(t, 1, levels[1].RequiredReferrals)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLevelRepository_GetLevel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLevelRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM mlm_levels WHERE level = \$1`).
			WithArgs(16).
			WillReturnRows(pgxmock.NewRows(levelRowColumns).
				AddRow(16, "Создатель", "", dec("0.25"), 300, dec("0"), dec("0")))

		level, err := repo.GetLevel(ctx, 16)
		require.NoError(t, err)
		assert.Equal(t, "Создатель", level.Name)
		assert.Equal(t, 300, level.RequiredReferrals)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Level not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM mlm_levels WHERE level = \$1`).
			WithArgs(17).
			WillReturnRows(pgxmock.NewRows(levelRowColumns))

		level, err := repo.GetLevel(ctx, 17)
		assert.ErrorIs(t, err, domain.ErrLevelNotFound)
		assert.Nil(t, level)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLevelRepository_ReplaceLevels(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLevelRepository(mock)
	ctx := context.Background()

	levels := []domain.MLMLevel{
		{Level: 1, Name: "Start", Percentage: dec("10"), RequiredPersonalVolume: dec("0"), RequiredGroupVolume: dec("0")},
		{Level: 2, Name: "Next", Percentage: dec("5"), RequiredReferrals: 3, RequiredPersonalVolume: dec("100"), RequiredGroupVolume: dec("0")},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM mlm_levels`).
			WillReturnResult(pgxmock.NewResult("DELETE", 16))
		mock.ExpectExec(`INSERT INTO mlm_levels`).
			WithArgs(1, "Start", "", decimalArg("10"), 0, decimalArg("0"), decimalArg("0")).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO mlm_levels`).
			WithArgs(2, "Next", "", decimalArg("5"), 3, decimalArg("100"), decimalArg("0")).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := repo.ReplaceLevels(ctx, levels)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate level", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM mlm_levels`).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mock.ExpectExec(`INSERT INTO mlm_levels`).
			WithArgs(1, "Start", "", decimalArg("10"), 0, decimalArg("0"), decimalArg("0")).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.ReplaceLevels(ctx, levels)
		assert.ErrorIs(t, err, domain.ErrInvalidLevels)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM mlm_levels`).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := repo.ReplaceLevels(ctx, levels)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
