package service

import (
	"context"
	"fmt"

	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/mlm"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Значения по умолчанию для обхода сети и построения отчетов
const (
	DefaultMaxDepth          = 16
	DefaultReportConcurrency = 20
)

// NetworkConfig параметры обхода сети
type NetworkConfig struct {
	MaxDepth          int
	ReportConcurrency int
}

// NetworkService реализует domain.NetworkService
type NetworkService struct {
	userRepo   domain.UserRepository
	ledgerRepo domain.LedgerRepository
	levelRepo  domain.LevelRepository
	volumes    *VolumeAggregator
	cfg        NetworkConfig
	logger     *zap.Logger
}

// NewNetworkService создает новый NetworkService
func NewNetworkService(
	userRepo domain.UserRepository,
	ledgerRepo domain.LedgerRepository,
	levelRepo domain.LevelRepository,
	volumes *VolumeAggregator,
	cfg NetworkConfig,
	logger *zap.Logger,
) *NetworkService {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.ReportConcurrency <= 0 {
		cfg.ReportConcurrency = DefaultReportConcurrency
	}

	return &NetworkService{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		levelRepo:  levelRepo,
		volumes:    volumes,
		cfg:        cfg,
		logger:     logger,
	}
}

// depth приводит запрошенную глубину к допустимой
func (s *NetworkService) depth(requested int) int {
	if requested <= 0 || requested > s.cfg.MaxDepth {
		return s.cfg.MaxDepth
	}
	return requested
}

// GetDescendants возвращает нижнюю линию пользователя с уровнями
func (s *NetworkService) GetDescendants(ctx context.Context, rootID int64, maxDepth int) ([]domain.Descendant, error) {
	if _, err := s.userRepo.GetUserByID(ctx, rootID); err != nil {
		if isOneOf(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("network service: failed to get user %d: %w", rootID, err)
	}

	return s.descendants(ctx, rootID, s.depth(maxDepth))
}

// descendants обходит дерево по уровням: на каждом шаге одним запросом
// загружаются дети всех пользователей текущего уровня
func (s *NetworkService) descendants(ctx context.Context, rootID int64, depth int) ([]domain.Descendant, error) {
	result := []domain.Descendant{}
	visited := map[int64]bool{rootID: true}
	frontier := []int64{rootID}

	for level := 1; level <= depth && len(frontier) > 0; level++ {
		children, err := s.userRepo.GetChildren(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("network service: failed to load level %d of user %d: %w", level, rootID, err)
		}

		next := make([]int64, 0, len(children))
		for _, child := range children {
			if visited[child.UserID] {
				s.logger.Error("referral cycle detected",
					zap.Int64("root_id", rootID),
					zap.Int64("user_id", child.UserID),
					zap.Int("level", level),
				)
				return nil, domain.ErrReferralCycle
			}
			visited[child.UserID] = true

			child.Level = level
			result = append(result, child)
			next = append(next, child.UserID)
		}
		frontier = next
	}

	return result, nil
}

// GetUserReport строит отчет по сети пользователя
func (s *NetworkService) GetUserReport(ctx context.Context, userID int64, opts domain.ReportOptions) (*domain.NetworkReport, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if isOneOf(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("network service: failed to get user %d: %w", userID, err)
	}

	levels, err := s.levelRepo.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("network service: failed to list levels: %w", err)
	}

	return s.buildReport(ctx, user, levels, opts)
}

// GetAllReports строит отчеты по всем пользователям, упорядоченные по ID
func (s *NetworkService) GetAllReports(ctx context.Context, opts domain.ReportOptions) ([]*domain.NetworkReport, error) {
	ids, err := s.userRepo.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("network service: failed to list users: %w", err)
	}

	levels, err := s.levelRepo.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("network service: failed to list levels: %w", err)
	}

	reports := make([]*domain.NetworkReport, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ReportConcurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			user, err := s.userRepo.GetUserByID(gctx, id)
			if err != nil {
				return fmt.Errorf("network service: failed to get user %d: %w", id, err)
			}

			report, err := s.buildReport(gctx, user, levels, opts)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("network reports built", zap.Int("users", len(reports)))
	return reports, nil
}

func (s *NetworkService) buildReport(ctx context.Context, user *domain.User, levels []domain.MLMLevel, opts domain.ReportOptions) (*domain.NetworkReport, error) {
	depth := s.depth(opts.MaxDepth)
	descendants, err := s.descendants(ctx, user.ID, depth)
	if err != nil {
		return nil, err
	}

	personal, err := s.volumes.Personal(ctx, user.ID, opts.Period)
	if err != nil {
		return nil, err
	}

	group, err := s.volumes.Group(ctx, descendants, opts.Period)
	if err != nil {
		return nil, err
	}

	earnings, err := s.ledgerRepo.SumEarnings(ctx, user.ID, opts.Period)
	if err != nil {
		return nil, fmt.Errorf("network service: failed to get earnings of user %d: %w", user.ID, err)
	}

	// ранг не зависит от параметров отчета: вся сеть, объемы за все время
	metrics := mlm.RankMetrics{
		Referrals:  len(descendants),
		PersonalPV: personal.TotalPV,
		GroupPV:    group.TotalPV,
	}
	truncated := depth < s.cfg.MaxDepth
	if truncated || opts.Period.From != nil || opts.Period.To != nil {
		network := descendants
		if truncated {
			network, err = s.descendants(ctx, user.ID, s.cfg.MaxDepth)
			if err != nil {
				return nil, err
			}
		}

		metrics, err = s.volumes.rankMetrics(ctx, user.ID, network)
		if err != nil {
			return nil, err
		}
	}

	return &domain.NetworkReport{
		UserID:         user.ID,
		FirstName:      user.FirstName,
		Username:       user.Username,
		TelegramID:     user.TelegramID,
		ReferralCode:   user.ReferralCode,
		CurrentLevel:   mlm.EvaluateRank(levels, metrics).CurrentLevel,
		PersonalVolume: personal,
		GroupVolume:    group,
		Network:        mlm.BuildNetworkStructure(descendants),
		Earnings:       earnings,
	}, nil
}
