package service

import (
	"context"
	"fmt"

	"github.com/vitawin/referral-engine/internal/domain"
)

// bonusHistoryLimit количество записей в истории бонусов
const bonusHistoryLimit = 100

// BalanceService реализует domain.BalanceService
type BalanceService struct {
	walletRepo domain.WalletRepository
	ledgerRepo domain.LedgerRepository
}

// NewBalanceService создает новый BalanceService
func NewBalanceService(walletRepo domain.WalletRepository, ledgerRepo domain.LedgerRepository) *BalanceService {
	return &BalanceService{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
	}
}

// GetWallet получает баланс пользователя
func (s *BalanceService) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to get wallet for user %d: %w", userID, err)
	}

	return wallet, nil
}

// GetBonusHistory получает последние начисления пользователя
func (s *BalanceService) GetBonusHistory(ctx context.Context, userID int64) ([]*domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetEntriesByUser(ctx, userID, bonusHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to get bonus history for user %d: %w", userID, err)
	}

	return entries, nil
}
