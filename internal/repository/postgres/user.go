package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitawin/referral-engine/internal/domain"
)

const userColumns = `id, telegram_id, COALESCE(first_name, ''), COALESCE(username, ''),
	COALESCE(referral_code, ''), applied_referral_code, referrer_id, created_at`

const (
	// referralBindingLockKey ключ advisory lock, общий для всех привязок
	referralBindingLockKey int64 = 7_301_001
	// maxAncestorWalk предел подъема по цепочке при проверке цикла
	maxAncestorWalk = 256
)

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.ID, &user.TelegramID, &user.FirstName, &user.Username,
		&user.ReferralCode, &user.AppliedReferralCode, &user.ReferrerID, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}

// GetUserByReferralCode ищет владельца реферального кода без учета регистра
func (r *UserRepository) GetUserByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE UPPER(referral_code) = UPPER($1)`,
		code,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReferralCodeNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by referral code %q: %w", code, err)
	}

	return user, nil
}

// GetChildren возвращает прямых рефералов всех переданных пользователей.
// Уровень в результате не заполняется, его назначает вызывающий.
func (r *UserRepository) GetChildren(ctx context.Context, parentIDs []int64) ([]domain.Descendant, error) {
	if len(parentIDs) == 0 {
		return []domain.Descendant{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, referrer_id
		 FROM users
		 WHERE referrer_id = ANY($1)
		 ORDER BY id`,
		parentIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get children of %d users: %w", len(parentIDs), err)
	}
	defer rows.Close()

	children := []domain.Descendant{}
	for rows.Next() {
		var child domain.Descendant
		if err := rows.Scan(&child.UserID, &child.ReferrerID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan child: %w", err)
		}
		children = append(children, child)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating children: %w", err)
	}

	return children, nil
}

// ancestorIDs возвращает цепочку вышестоящих пользователей,
// начиная с прямого реферера, не длиннее maxDepth
func ancestorIDs(ctx context.Context, db DBTX, userID int64, maxDepth int) ([]int64, error) {
	rows, err := db.Query(ctx,
		`WITH RECURSIVE chain AS (
			SELECT referrer_id AS id, 1 AS depth
			FROM users
			WHERE id = $1 AND referrer_id IS NOT NULL
			UNION ALL
			SELECT u.referrer_id, c.depth + 1
			FROM users u
			JOIN chain c ON u.id = c.id
			WHERE u.referrer_id IS NOT NULL AND c.depth < $2
		)
		SELECT id FROM chain ORDER BY depth`,
		userID, maxDepth,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get ancestors of user %d: %w", userID, err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan ancestor: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating ancestors: %w", err)
	}

	return ids, nil
}

// ApplyReferral привязывает пользователя к рефереру.
//
// Привязки сериализуются advisory lock: проверка, что реферер не находится
// в нижней линии пользователя, и условное обновление выполняются в одной
// транзакции. Повторная привязка невозможна.
func (r *UserRepository) ApplyReferral(ctx context.Context, userID, referrerID int64, code string) error {
	if userID == referrerID {
		return domain.ErrSelfReferral
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, referralBindingLockKey)
	if err != nil {
		return fmt.Errorf("repository: failed to acquire referral binding lock: %w", err)
	}

	ancestors, err := ancestorIDs(ctx, tx, referrerID, maxAncestorWalk)
	if err != nil {
		return err
	}
	for _, id := range ancestors {
		if id == userID {
			return domain.ErrReferralCycle
		}
	}

	result, err := tx.Exec(ctx,
		`UPDATE users
		 SET applied_referral_code = $1, referrer_id = $2
		 WHERE id = $3 AND applied_referral_code IS NULL AND referrer_id IS NULL`,
		code, referrerID, userID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to apply referral code for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrReferralAlreadyApplied
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit referral of user %d: %w", userID, err)
	}

	return nil
}

// ListUserIDs возвращает идентификаторы всех пользователей
func (r *UserRepository) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list users: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return ids, nil
}

// CountDirectReferrals считает рефералов первой линии
func (r *UserRepository) CountDirectReferrals(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE referrer_id = $1`,
		userID,
	).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("repository: failed to count referrals of user %d: %w", userID, err)
	}

	return count, nil
}
