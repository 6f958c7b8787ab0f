package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitawin/referral-engine/internal/domain"
)

// recentReferralsLimit количество последних начислений в статистике
const recentReferralsLimit = 10

// ReferralService реализует domain.ReferralService
type ReferralService struct {
	userRepo   domain.UserRepository
	ledgerRepo domain.LedgerRepository
}

// NewReferralService создает новый ReferralService
func NewReferralService(userRepo domain.UserRepository, ledgerRepo domain.LedgerRepository) *ReferralService {
	return &ReferralService{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
	}
}

// ApplyCode привязывает пользователя к владельцу реферального кода.
// Привязка выполняется один раз и не может быть изменена.
func (s *ReferralService) ApplyCode(ctx context.Context, userID int64, code string) (*domain.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidReferralCode
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if isOneOf(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("referral service: failed to get user %d: %w", userID, err)
	}

	if user.AppliedReferralCode != nil || user.ReferrerID != nil {
		return nil, domain.ErrReferralAlreadyApplied
	}

	referrer, err := s.lookupReferrer(ctx, userID, code)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.ApplyReferral(ctx, userID, referrer.ID, referrer.ReferralCode); err != nil {
		if isOneOf(err, domain.ErrReferralAlreadyApplied, domain.ErrReferralCycle, domain.ErrSelfReferral) {
			return nil, err
		}
		return nil, fmt.Errorf("referral service: failed to apply code for user %d: %w", userID, err)
	}

	return referrer, nil
}

// ValidateCode проверяет код без привязки
func (s *ReferralService) ValidateCode(ctx context.Context, userID int64, code string) (*domain.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidReferralCode
	}

	return s.lookupReferrer(ctx, userID, code)
}

func (s *ReferralService) lookupReferrer(ctx context.Context, userID int64, code string) (*domain.User, error) {
	referrer, err := s.userRepo.GetUserByReferralCode(ctx, code)
	if err != nil {
		if isOneOf(err, domain.ErrReferralCodeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("referral service: failed to find referral code %q: %w", code, err)
	}

	if referrer.ID == userID {
		return nil, domain.ErrSelfReferral
	}

	return referrer, nil
}

// GetStats возвращает реферальную статистику пользователя
func (s *ReferralService) GetStats(ctx context.Context, userID int64) (*domain.ReferralStats, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if isOneOf(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("referral service: failed to get user %d: %w", userID, err)
	}

	count, err := s.userRepo.CountDirectReferrals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("referral service: failed to count referrals of user %d: %w", userID, err)
	}

	earnings, err := s.ledgerRepo.SumEarnings(ctx, userID, domain.Period{})
	if err != nil {
		return nil, fmt.Errorf("referral service: failed to get earnings of user %d: %w", userID, err)
	}

	recent, err := s.ledgerRepo.GetEntriesByUser(ctx, userID, recentReferralsLimit)
	if err != nil {
		return nil, fmt.Errorf("referral service: failed to get recent entries of user %d: %w", userID, err)
	}

	return &domain.ReferralStats{
		ReferralCode:    user.ReferralCode,
		TotalReferrals:  count,
		TotalEarnings:   earnings.TotalEarned,
		RecentReferrals: recent,
	}, nil
}
