package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vitawin/referral-engine/internal/domain"
)

const orderColumns = `id, user_id, total, pv_earned, payment_status, bonuses_processed_at, created_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	err := row.Scan(&order.ID, &order.UserID, &order.Total, &order.PVEarned,
		&order.PaymentStatus, &order.BonusesProcessedAt, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrderByID получает заказ по ID
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	return order, nil
}

// TransitionPaymentStatus меняет статус оплаты, только если текущий статус равен from.
// Возвращает false, если заказ находится в другом статусе.
func (r *OrderRepository) TransitionPaymentStatus(ctx context.Context, id int64, from, to domain.PaymentStatus) (bool, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET payment_status = $1
		 WHERE id = $2 AND payment_status = $3`,
		to, id, from,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to update order %d payment status: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

// GetUnprocessedPaidOrders получает оплаченные заказы, по которым не завершено начисление бонусов
func (r *OrderRepository) GetUnprocessedPaidOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE payment_status = $1 AND bonuses_processed_at IS NULL
		 ORDER BY created_at ASC
		 LIMIT $2`,
		domain.PaymentStatusPaid, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get unprocessed paid orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating unprocessed orders: %w", err)
	}

	return orders, nil
}

// SumPaidOrders считает сумму, PV и количество оплаченных заказов группы пользователей.
// Границы периода включительные, nil означает отсутствие границы.
func (r *OrderRepository) SumPaidOrders(ctx context.Context, userIDs []int64, period domain.Period) (domain.Volume, error) {
	var volume domain.Volume
	if len(userIDs) == 0 {
		return volume, nil
	}

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0), COALESCE(SUM(pv_earned), 0), COUNT(*)
		 FROM orders
		 WHERE user_id = ANY($1)
		   AND payment_status = $2
		   AND ($3::timestamptz IS NULL OR created_at >= $3)
		   AND ($4::timestamptz IS NULL OR created_at <= $4)`,
		userIDs, domain.PaymentStatusPaid, period.From, period.To,
	).Scan(&volume.TotalAmount, &volume.TotalPV, &volume.OrdersCount)

	if err != nil {
		return domain.Volume{}, fmt.Errorf("repository: failed to sum paid orders of %d users: %w", len(userIDs), err)
	}

	return volume, nil
}
