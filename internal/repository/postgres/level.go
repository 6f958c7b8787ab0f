package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitawin/referral-engine/internal/domain"
)

const levelColumns = `level, name, COALESCE(description, ''), percentage,
	required_referrals, required_personal_volume, required_group_volume`

// LevelRepository реализует domain.LevelRepository
type LevelRepository struct {
	db DBTX
}

// NewLevelRepository создает новый LevelRepository
func NewLevelRepository(db DBTX) *LevelRepository {
	return &LevelRepository{db: db}
}

func scanLevel(row pgx.Row) (domain.MLMLevel, error) {
	var l domain.MLMLevel
	err := row.Scan(&l.Level, &l.Name, &l.Description, &l.Percentage,
		&l.RequiredReferrals, &l.RequiredPersonalVolume, &l.RequiredGroupVolume)
	return l, err
}

// ListLevels получает таблицу уровней по возрастанию
func (r *LevelRepository) ListLevels(ctx context.Context) ([]domain.MLMLevel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+levelColumns+`
		 FROM mlm_levels
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list mlm levels: %w", err)
	}
	defer rows.Close()

	levels := []domain.MLMLevel{}
	for rows.Next() {
		l, err := scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan mlm level: %w", err)
		}
		levels = append(levels, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating mlm levels: %w", err)
	}

	return levels, nil
}

// GetLevel получает уровень по номеру
func (r *LevelRepository) GetLevel(ctx context.Context, level int) (*domain.MLMLevel, error) {
	l, err := scanLevel(r.db.QueryRow(ctx,
		`SELECT `+levelColumns+`
		 FROM mlm_levels
		 WHERE level = $1`,
		level,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLevelNotFound
		}
		return nil, fmt.Errorf("repository: failed to get mlm level %d: %w", level, err)
	}

	return &l, nil
}

// ReplaceLevels заменяет таблицу уровней целиком
func (r *LevelRepository) ReplaceLevels(ctx context.Context, levels []domain.MLMLevel) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction for mlm levels: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	if _, err = tx.Exec(ctx, `DELETE FROM mlm_levels`); err != nil {
		return fmt.Errorf("repository: failed to clear mlm levels: %w", err)
	}

	for _, l := range levels {
		_, err = tx.Exec(ctx,
			`INSERT INTO mlm_levels
				(level, name, description, percentage, required_referrals, required_personal_volume, required_group_volume)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			l.Level, l.Name, l.Description, l.Percentage,
			l.RequiredReferrals, l.RequiredPersonalVolume, l.RequiredGroupVolume,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrInvalidLevels
			}
			return fmt.Errorf("repository: failed to insert mlm level %d: %w", l.Level, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit mlm levels: %w", err)
	}

	return nil
}
