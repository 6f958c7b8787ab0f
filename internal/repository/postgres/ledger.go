package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitawin/referral-engine/internal/domain"
)

// LedgerRepository реализует domain.LedgerRepository
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// CreditOrder начисляет бонусы по оплаченному заказу в одной транзакции.
//
// Строка заказа блокируется FOR UPDATE, заказ помечается обработанным
// (bonuses_processed_at), затем по цепочке рефереров строится план начислений,
// каждое начисление записывается в журнал и прибавляется к кошельку.
// Любая ошибка откатывает транзакцию целиком.
func (r *LedgerRepository) CreditOrder(ctx context.Context, orderID int64, planner domain.CreditPlanner) (*domain.CreditResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for order %d: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	order, err := scanOrder(tx.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE id = $1
		 FOR UPDATE`,
		orderID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock order %d: %w", orderID, err)
	}

	if order.PaymentStatus != domain.PaymentStatusPaid {
		return nil, domain.ErrOrderNotPaid
	}
	if order.BonusesProcessedAt != nil {
		return nil, domain.ErrCommissionAlreadyProcessed
	}

	result, err := tx.Exec(ctx,
		`UPDATE orders
		 SET bonuses_processed_at = NOW()
		 WHERE id = $1 AND bonuses_processed_at IS NULL`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to claim order %d: %w", orderID, err)
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrCommissionAlreadyProcessed
	}

	var (
		buyerName  string
		referrerID *int64
	)
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(first_name, ''), referrer_id FROM users WHERE id = $1`,
		order.UserID,
	).Scan(&buyerName, &referrerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get buyer %d: %w", order.UserID, err)
	}

	chain, err := loadCommissionChain(ctx, tx, order.UserID, referrerID)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(ctx, tx)
	if err != nil {
		return nil, err
	}

	credits := planner(*order, chain, *settings)

	for _, credit := range credits {
		_, err = tx.Exec(ctx,
			`INSERT INTO bonus_ledger (user_id, source_user_id, order_id, level, rate, amount, type, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			credit.UserID, order.UserID, order.ID, credit.Level, credit.Rate, credit.Amount,
			credit.Type, domain.EntryStatusCompleted,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrDuplicateCredit
			}
			return nil, fmt.Errorf("repository: failed to insert ledger entry for order %d level %d: %w", orderID, credit.Level, err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO wallets (user_id, balance, updated_at)
			 VALUES ($1, $2, NOW())
			 ON CONFLICT (user_id) DO UPDATE
			 SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()`,
			credit.UserID, credit.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to credit wallet of user %d: %w", credit.UserID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit credits for order %d: %w", orderID, err)
	}

	return &domain.CreditResult{
		OrderID:   order.ID,
		BuyerID:   order.UserID,
		BuyerName: buyerName,
		Credits:   credits,
	}, nil
}

// loadCommissionChain поднимается по цепочке рефереров покупателя
// не выше domain.MaxCommissionLevels. Повторно встреченный пользователь
// прерывает обход.
func loadCommissionChain(ctx context.Context, db DBTX, buyerID int64, referrerID *int64) ([]domain.Ancestor, error) {
	chain := make([]domain.Ancestor, 0, domain.MaxCommissionLevels)
	visited := map[int64]bool{buyerID: true}

	next := referrerID
	for level := 1; level <= domain.MaxCommissionLevels && next != nil; level++ {
		if visited[*next] {
			break
		}
		visited[*next] = true

		ancestor := domain.Ancestor{Level: level}
		var parent *int64
		err := db.QueryRow(ctx,
			`SELECT id, telegram_id, COALESCE(first_name, ''), referrer_id FROM users WHERE id = $1`,
			*next,
		).Scan(&ancestor.UserID, &ancestor.TelegramID, &ancestor.FirstName, &parent)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				break
			}
			return nil, fmt.Errorf("repository: failed to get referrer %d: %w", *next, err)
		}

		chain = append(chain, ancestor)
		next = parent
	}

	return chain, nil
}

// GetEntriesByUser получает последние записи журнала пользователя
func (r *LedgerRepository) GetEntriesByUser(ctx context.Context, userID int64, limit int) ([]*domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, source_user_id, order_id, level, rate, amount, type, status, created_at
		 FROM bonus_ledger
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get ledger entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	entries := []*domain.LedgerEntry{}
	for rows.Next() {
		e := &domain.LedgerEntry{}
		err := rows.Scan(&e.ID, &e.UserID, &e.SourceUserID, &e.OrderID, &e.Level,
			&e.Rate, &e.Amount, &e.Type, &e.Status, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating ledger entries: %w", err)
	}

	return entries, nil
}

// SumEarnings суммирует реферальные и уровневые бонусы пользователя за период
func (r *LedgerRepository) SumEarnings(ctx context.Context, userID int64, period domain.Period) (domain.Earnings, error) {
	var earnings domain.Earnings

	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = $2), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = $3), 0)
		 FROM bonus_ledger
		 WHERE user_id = $1
		   AND status = $4
		   AND ($5::timestamptz IS NULL OR created_at >= $5)
		   AND ($6::timestamptz IS NULL OR created_at <= $6)`,
		userID, domain.BonusTypeReferral, domain.BonusTypeLevel, domain.EntryStatusCompleted,
		period.From, period.To,
	).Scan(&earnings.ReferralBonuses, &earnings.LevelBonuses)

	if err != nil {
		return domain.Earnings{}, fmt.Errorf("repository: failed to sum earnings for user %d: %w", userID, err)
	}

	earnings.TotalEarned = earnings.ReferralBonuses.Add(earnings.LevelBonuses)
	return earnings, nil
}
