package service

import (
	"context"
	"fmt"

	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/mlm"
)

// VolumeAggregator считает личный и групповой объем оплаченных заказов.
// Значения не кешируются и пересчитываются при каждом запросе.
type VolumeAggregator struct {
	orderRepo domain.OrderRepository
}

// NewVolumeAggregator создает новый VolumeAggregator
func NewVolumeAggregator(orderRepo domain.OrderRepository) *VolumeAggregator {
	return &VolumeAggregator{orderRepo: orderRepo}
}

// Personal возвращает объем собственных заказов пользователя
func (a *VolumeAggregator) Personal(ctx context.Context, userID int64, period domain.Period) (domain.Volume, error) {
	volume, err := a.orderRepo.SumPaidOrders(ctx, []int64{userID}, period)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("volume aggregator: failed to get personal volume of user %d: %w", userID, err)
	}
	return volume, nil
}

// Group возвращает объем заказов всей нижней линии.
// Пустая нижняя линия дает нулевой объем без обращения к базе.
func (a *VolumeAggregator) Group(ctx context.Context, descendants []domain.Descendant, period domain.Period) (domain.Volume, error) {
	if len(descendants) == 0 {
		return domain.Volume{}, nil
	}

	volume, err := a.orderRepo.SumPaidOrders(ctx, mlm.DescendantIDs(descendants), period)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("volume aggregator: failed to get group volume of %d users: %w", len(descendants), err)
	}
	return volume, nil
}

// rankMetrics собирает показатели для оценки ранга за все время
func (a *VolumeAggregator) rankMetrics(ctx context.Context, userID int64, descendants []domain.Descendant) (mlm.RankMetrics, error) {
	personal, err := a.Personal(ctx, userID, domain.Period{})
	if err != nil {
		return mlm.RankMetrics{}, err
	}

	group, err := a.Group(ctx, descendants, domain.Period{})
	if err != nil {
		return mlm.RankMetrics{}, err
	}

	return mlm.RankMetrics{
		Referrals:  len(descendants),
		PersonalPV: personal.TotalPV,
		GroupPV:    group.TotalPV,
	}, nil
}
