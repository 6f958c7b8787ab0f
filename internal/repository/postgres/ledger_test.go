package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/mlm"
)

var settingsRowColumns = []string{
	"level1_commission", "level2_commission", "level3_commission", "bonus_coins_percentage", "updated_at",
}

func expectLockedOrder(mock pgxmock.PgxPoolIface, orderID, userID int64, total string, status domain.PaymentStatus, processedAt *time.Time) {
	mock.ExpectQuery(`SELECT .+ FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs(orderID).
		WillReturnRows(pgxmock.NewRows(orderRowColumns).
			AddRow(orderID, userID, dec(total), dec("0"), status, processedAt, time.Now()))
}

func expectAncestor(mock pgxmock.PgxPoolIface, id, telegramID int64, name string, parent *int64) {
	mock.ExpectQuery(`SELECT id, telegram_id, .+ FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "telegram_id", "first_name", "referrer_id"}).
			AddRow(id, telegramID, name, parent))
}

func expectDefaultSettings(mock pgxmock.PgxPoolIface) {
	mock.ExpectQuery(`FROM referral_settings WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(settingsRowColumns).
			AddRow(dec("20"), dec("5"), dec("1"), dec("5"), nil))
}

func expectCredit(mock pgxmock.PgxPoolIface, userID, buyerID, orderID int64, level int, rate, amount string, bonusType domain.BonusType) {
	mock.ExpectExec(`INSERT INTO bonus_ledger`).
		WithArgs(userID, buyerID, orderID, level, decimalArg(rate), decimalArg(amount), bonusType, domain.EntryStatusCompleted).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO wallets .+ ON CONFLICT \(user_id\) DO UPDATE`).
		WithArgs(userID, decimalArg(amount)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func TestLedgerRepository_CreditOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	t.Run("Three level chain", func(t *testing.T) {
		// A(1) -> B(2) -> C(3) -> D(4), D оплачивает заказ на 1000
		mock.ExpectBegin()
		expectLockedOrder(mock, 10, 4, "1000", domain.PaymentStatusPaid, nil)
		mock.ExpectExec(`UPDATE orders SET bonuses_processed_at = NOW\(\) WHERE id = \$1 AND bonuses_processed_at IS NULL`).
			WithArgs(int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`SELECT COALESCE\(first_name, ''\), referrer_id FROM users`).
			WithArgs(int64(4)).
			WillReturnRows(pgxmock.NewRows([]string{"first_name", "referrer_id"}).AddRow("Dmitry", int64Ptr(3)))
		expectAncestor(mock, 3, 300, "Cyril", int64Ptr(2))
		expectAncestor(mock, 2, 200, "Boris", int64Ptr(1))
		expectAncestor(mock, 1, 100, "Anna", nil)
		expectDefaultSettings(mock)
		expectCredit(mock, 3, 4, 10, 1, "20", "200", domain.BonusTypeReferral)
		expectCredit(mock, 2, 4, 10, 2, "5", "50", domain.BonusTypeLevel)
		expectCredit(mock, 1, 4, 10, 3, "1", "10", domain.BonusTypeLevel)
		expectCredit(mock, 4, 4, 10, 0, "5", "50", domain.BonusTypeBonusCoins)
		mock.ExpectCommit()

		result, err := repo.CreditOrder(ctx, 10, mlm.PlanCredits)
		require.NoError(t, err)
		assert.Equal(t, int64(10), result.OrderID)
		assert.Equal(t, int64(4), result.BuyerID)
		assert.Equal(t, "Dmitry", result.BuyerName)
		require.Len(t, result.Credits, 4)
		assert.Equal(t, int64(300), result.Credits[0].TelegramID)
		assert.False(t, result.AlreadyProcessed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Referral cycle stops the walk", func(t *testing.T) {
		// 5 -> 6 -> 5: у реферера покупателя реферером указан сам покупатель
		mock.ExpectBegin()
		expectLockedOrder(mock, 11, 5, "100", domain.PaymentStatusPaid, nil)
		mock.ExpectExec(`UPDATE orders SET bonuses_processed_at`).
			WithArgs(int64(11)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`SELECT COALESCE\(first_name, ''\), referrer_id FROM users`).
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows([]string{"first_name", "referrer_id"}).AddRow("Eva", int64Ptr(6)))
		expectAncestor(mock, 6, 600, "Fedor", int64Ptr(5))
		mock.ExpectQuery(`FROM referral_settings`).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(settingsRowColumns))
		expectCredit(mock, 6, 5, 11, 1, "20", "20", domain.BonusTypeReferral)
		expectCredit(mock, 5, 5, 11, 0, "5", "5", domain.BonusTypeBonusCoins)
		mock.ExpectCommit()

		result, err := repo.CreditOrder(ctx, 11, mlm.PlanCredits)
		require.NoError(t, err)
		assert.Len(t, result.Credits, 2)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders WHERE id = \$1 FOR UPDATE`).
			WithArgs(int64(404)).
			WillReturnRows(pgxmock.NewRows(orderRowColumns))
		mock.ExpectRollback()

		result, err := repo.CreditOrder(ctx, 404, mlm.PlanCredits)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not paid", func(t *testing.T) {
		mock.ExpectBegin()
		expectLockedOrder(mock, 12, 4, "100", domain.PaymentStatusPending, nil)
		mock.ExpectRollback()

		result, err := repo.CreditOrder(ctx, 12, mlm.PlanCredits)
		assert.ErrorIs(t, err, domain.ErrOrderNotPaid)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already processed", func(t *testing.T) {
		processedAt := time.Now().Add(-time.Hour)

		mock.ExpectBegin()
		expectLockedOrder(mock, 13, 4, "100", domain.PaymentStatusPaid, &processedAt)
		mock.ExpectRollback()

		result, err := repo.CreditOrder(ctx, 13, mlm.PlanCredits)
		assert.ErrorIs(t, err, domain.ErrCommissionAlreadyProcessed)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Claim lost", func(t *testing.T) {
		mock.ExpectBegin()
		expectLockedOrder(mock, 14, 4, "100", domain.PaymentStatusPaid, nil)
		mock.ExpectExec(`UPDATE orders SET bonuses_processed_at`).
			WithArgs(int64(14)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		result, err := repo.CreditOrder(ctx, 14, mlm.PlanCredits)
		assert.ErrorIs(t, err, domain.ErrCommissionAlreadyProcessed)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate ledger entry rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		expectLockedOrder(mock, 15, 4, "1000", domain.PaymentStatusPaid, nil)
		mock.ExpectExec(`UPDATE orders SET bonuses_processed_at`).
			WithArgs(int64(15)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`SELECT COALESCE\(first_name, ''\), referrer_id FROM users`).
			WithArgs(int64(4)).
			WillReturnRows(pgxmock.NewRows([]string{"first_name", "referrer_id"}).AddRow("Dmitry", int64Ptr(3)))
		expectAncestor(mock, 3, 300, "Cyril", nil)
		expectDefaultSettings(mock)
		mock.ExpectExec(`INSERT INTO bonus_ledger`).
			WithArgs(int64(3), int64(4), int64(15), 1, decimalArg("20"), decimalArg("200"), domain.BonusTypeReferral, domain.EntryStatusCompleted).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		result, err := repo.CreditOrder(ctx, 15, mlm.PlanCredits)
		assert.ErrorIs(t, err, domain.ErrDuplicateCredit)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Wallet error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		expectLockedOrder(mock, 16, 4, "100", domain.PaymentStatusPaid, nil)
		mock.ExpectExec(`UPDATE orders SET bonuses_processed_at`).
			WithArgs(int64(16)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`SELECT COALESCE\(first_name, ''\), referrer_id FROM users`).
			WithArgs(int64(4)).
			WillReturnRows(pgxmock.NewRows([]string{"first_name", "referrer_id"}).AddRow("Dmitry", nil))
		expectDefaultSettings(mock)
		mock.ExpectExec(`INSERT INTO bonus_ledger`).
			WithArgs(int64(4), int64(4), int64(16), 0, decimalArg("5"), decimalArg("5"), domain.BonusTypeBonusCoins, domain.EntryStatusCompleted).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO wallets`).
			WithArgs(int64(4), decimalArg("5")).
			WillReturnError(errors.New("wallet error"))
		mock.ExpectRollback()

		result, err := repo.CreditOrder(ctx, 16, mlm.PlanCredits)
		assert.Error(t, err)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		result, err := repo.CreditOrder(ctx, 17, mlm.PlanCredits)
		assert.Error(t, err)
		assert.Nil(t, result)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_GetEntriesByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "user_id", "source_user_id", "order_id", "level", "rate", "amount", "type", "status", "created_at"}).
		AddRow(int64(1), int64(3), int64(4), int64(10), 1, dec("20"), dec("200"), domain.BonusTypeReferral, domain.EntryStatusCompleted, time.Now())

	mock.ExpectQuery(`FROM bonus_ledger WHERE user_id = \$1 ORDER BY created_at DESC, id DESC LIMIT \$2`).
		WithArgs(int64(3), 10).
		WillReturnRows(rows)

	entries, err := repo.GetEntriesByUser(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(10), entries[0].OrderID)
	assert.Equal(t, domain.BonusTypeReferral, entries[0].Type)
	assert.True(t, entries[0].Amount.Equal(dec("200")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_SumEarnings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM bonus_ledger WHERE user_id = \$1 AND status = \$4`).
			WithArgs(int64(3), domain.BonusTypeReferral, domain.BonusTypeLevel, domain.EntryStatusCompleted, (*time.Time)(nil), (*time.Time)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"referral", "level"}).AddRow(dec("200"), dec("60.50")))

		earnings, err := repo.SumEarnings(context.Background(), 3, domain.Period{})
		require.NoError(t, err)
		assert.True(t, earnings.ReferralBonuses.Equal(dec("200")))
		assert.True(t, earnings.LevelBonuses.Equal(dec("60.5")))
		assert.True(t, earnings.TotalEarned.Equal(dec("260.5")))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`FROM bonus_ledger`).
			WithArgs(int64(3), domain.BonusTypeReferral, domain.BonusTypeLevel, domain.EntryStatusCompleted, (*time.Time)(nil), (*time.Time)(nil)).
			WillReturnError(errors.New("database error"))

		_, err := repo.SumEarnings(context.Background(), 3, domain.Period{})
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
