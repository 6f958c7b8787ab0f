package service

import (
	"context"
	"fmt"

	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/mlm"
	"go.uber.org/zap"
)

// RankService реализует domain.RankService
type RankService struct {
	levelRepo domain.LevelRepository
	network   domain.NetworkService
	volumes   *VolumeAggregator
	logger    *zap.Logger
}

// NewRankService создает новый RankService
func NewRankService(levelRepo domain.LevelRepository, network domain.NetworkService, volumes *VolumeAggregator, logger *zap.Logger) *RankService {
	return &RankService{
		levelRepo: levelRepo,
		network:   network,
		volumes:   volumes,
		logger:    logger,
	}
}

// ListLevels возвращает таблицу уровней
func (s *RankService) ListLevels(ctx context.Context) ([]domain.MLMLevel, error) {
	levels, err := s.levelRepo.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank service: failed to list levels: %w", err)
	}
	return mlm.SortLevels(levels), nil
}

// GetLevel возвращает уровень по номеру
func (s *RankService) GetLevel(ctx context.Context, level int) (*domain.MLMLevel, error) {
	if level < 1 || level > mlm.BreakdownLevels {
		return nil, domain.ErrLevelNotFound
	}

	l, err := s.levelRepo.GetLevel(ctx, level)
	if err != nil {
		if isOneOf(err, domain.ErrLevelNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("rank service: failed to get level %d: %w", level, err)
	}
	return l, nil
}

// ReplaceLevels проверяет и сохраняет новую таблицу уровней
func (s *RankService) ReplaceLevels(ctx context.Context, levels []domain.MLMLevel) error {
	if err := mlm.ValidateLevels(levels); err != nil {
		return err
	}

	if err := s.levelRepo.ReplaceLevels(ctx, mlm.SortLevels(levels)); err != nil {
		if isOneOf(err, domain.ErrInvalidLevels) {
			return err
		}
		return fmt.Errorf("rank service: failed to replace levels: %w", err)
	}

	s.logger.Info("mlm levels replaced", zap.Int("count", len(levels)))
	return nil
}

// GetUserStatus вычисляет текущий ранг пользователя и прогресс до следующего.
// Статус не хранится, он пересчитывается при каждом запросе.
func (s *RankService) GetUserStatus(ctx context.Context, userID int64) (*domain.RankStatus, error) {
	descendants, err := s.network.GetDescendants(ctx, userID, 0)
	if err != nil {
		if isOneOf(err, domain.ErrUserNotFound, domain.ErrReferralCycle) {
			return nil, err
		}
		return nil, fmt.Errorf("rank service: failed to get network of user %d: %w", userID, err)
	}

	metrics, err := s.volumes.rankMetrics(ctx, userID, descendants)
	if err != nil {
		return nil, fmt.Errorf("rank service: %w", err)
	}

	levels, err := s.levelRepo.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("rank service: failed to list levels: %w", err)
	}

	rank := mlm.EvaluateRank(levels, metrics)

	return &domain.RankStatus{
		UserID:           userID,
		CurrentLevel:     rank.CurrentLevel,
		CurrentLevelInfo: rank.Current,
		NextLevel:        rank.NextLevel,
		RequiredForNext:  rank.RequiredForNext,
		TotalReferrals:   metrics.Referrals,
		PersonalPV:       metrics.PersonalPV,
		GroupPV:          metrics.GroupPV,
	}, nil
}
