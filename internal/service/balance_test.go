package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vitawin/referral-engine/internal/domain"
	domainmocks "github.com/vitawin/referral-engine/internal/domain/mocks"
)

func TestBalanceService_GetWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		walletRepo := domainmocks.NewWalletRepositoryMock(t)
		service := NewBalanceService(walletRepo, domainmocks.NewLedgerRepositoryMock(t))

		wallet := &domain.Wallet{UserID: 1, Balance: dec("260.50")}
		walletRepo.EXPECT().GetWallet(mock.Anything, int64(1)).Return(wallet, nil).Once()

		result, err := service.GetWallet(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, wallet, result)
	})

	t.Run("Database error", func(t *testing.T) {
		walletRepo := domainmocks.NewWalletRepositoryMock(t)
		service := NewBalanceService(walletRepo, domainmocks.NewLedgerRepositoryMock(t))

		walletRepo.EXPECT().GetWallet(mock.Anything, int64(1)).Return(nil, errors.New("db error")).Once()

		result, err := service.GetWallet(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestBalanceService_GetBonusHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		service := NewBalanceService(domainmocks.NewWalletRepositoryMock(t), ledgerRepo)

		entries := []*domain.LedgerEntry{
			{ID: 2, UserID: 1, OrderID: 11, Level: 2, Amount: dec("50"), Type: domain.BonusTypeLevel},
			{ID: 1, UserID: 1, OrderID: 10, Level: 1, Amount: dec("200"), Type: domain.BonusTypeReferral},
		}
		ledgerRepo.EXPECT().GetEntriesByUser(mock.Anything, int64(1), bonusHistoryLimit).Return(entries, nil).Once()

		result, err := service.GetBonusHistory(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Empty", func(t *testing.T) {
		ledgerRepo := domainmocks.NewLedgerRepositoryMock(t)
		service := NewBalanceService(domainmocks.NewWalletRepositoryMock(t), ledgerRepo)

		ledgerRepo.EXPECT().GetEntriesByUser(mock.Anything, int64(1), bonusHistoryLimit).
			Return([]*domain.LedgerEntry{}, nil).Once()

		result, err := service.GetBonusHistory(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
