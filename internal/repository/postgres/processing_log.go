package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vitawin/referral-engine/internal/domain"
)

// ProcessingLogRepository реализует domain.ProcessingLogRepository
type ProcessingLogRepository struct {
	db DBTX
}

// NewProcessingLogRepository создает новый ProcessingLogRepository
func NewProcessingLogRepository(db DBTX) *ProcessingLogRepository {
	return &ProcessingLogRepository{db: db}
}

// AppendProcessingLog добавляет запись об этапе обработки заказа
func (r *ProcessingLogRepository) AppendProcessingLog(ctx context.Context, entry domain.ProcessingLogEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("repository: failed to encode processing details for order %d: %w", entry.OrderID, err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO order_processing_log (order_id, run_id, stage, details)
		 VALUES ($1, $2, $3, $4)`,
		entry.OrderID, entry.RunID, entry.Stage, details,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to append processing log for order %d: %w", entry.OrderID, err)
	}

	return nil
}

// GetProcessingLog получает журнал обработки заказа в хронологическом порядке
func (r *ProcessingLogRepository) GetProcessingLog(ctx context.Context, orderID int64) ([]*domain.ProcessingLogEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, run_id, stage, details, created_at
		 FROM order_processing_log
		 WHERE order_id = $1
		 ORDER BY created_at ASC, id ASC`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get processing log for order %d: %w", orderID, err)
	}
	defer rows.Close()

	entries := []*domain.ProcessingLogEntry{}
	for rows.Next() {
		e := &domain.ProcessingLogEntry{}
		var details []byte
		if err := rows.Scan(&e.ID, &e.OrderID, &e.RunID, &e.Stage, &details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan processing log entry: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return nil, fmt.Errorf("repository: failed to decode processing details: %w", err)
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating processing log: %w", err)
	}

	return entries, nil
}
