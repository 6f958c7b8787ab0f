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

func TestProcessingLogRepository_AppendProcessingLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProcessingLogRepository(mock)
	ctx := context.Background()

	entry := domain.ProcessingLogEntry{
		OrderID: 10,
		RunID:   "6f1c2f0e-8a53-4c4e-9d3b-5a4d6c1e2f10",
		Stage:   domain.StageCredited,
		Details: map[string]any{"credits": 4, "total": "310.00"},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO order_processing_log`).
			WithArgs(int64(10), entry.RunID, domain.StageCredited, []byte(`{"credits":4,"total":"310.00"}`)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.AppendProcessingLog(ctx, entry)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO order_processing_log`).
			WithArgs(int64(10), entry.RunID, domain.StageCredited, pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))

		err := repo.AppendProcessingLog(ctx, entry)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProcessingLogRepository_GetProcessingLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProcessingLogRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "order_id", "run_id", "stage", "details", "created_at"}).
		AddRow(int64(1), int64(10), "run-1", domain.StageStarted, []byte(`{"buyer_id":4}`), time.Now()).
		AddRow(int64(2), int64(10), "run-1", domain.StageCredited, []byte(`null`), time.Now())

	mock.ExpectQuery(`FROM order_processing_log WHERE order_id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	entries, err := repo.GetProcessingLog(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.StageStarted, entries[0].Stage)
	assert.Equal(t, float64(4), entries[0].Details["buyer_id"])
	assert.Nil(t, entries[1].Details)

	assert.NoError(t, mock.ExpectationsWereMet())
}
