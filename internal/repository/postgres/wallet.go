package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vitawin/referral-engine/internal/domain"
)

// WalletRepository реализует domain.WalletRepository
type WalletRepository struct {
	db DBTX
}

// NewWalletRepository создает новый WalletRepository
func NewWalletRepository(db DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetWallet получает кошелек пользователя.
// Пользователь без начислений получает пустой кошелек.
func (r *WalletRepository) GetWallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	wallet := &domain.Wallet{}

	err := r.db.QueryRow(ctx,
		`SELECT user_id, balance, updated_at
		 FROM wallets
		 WHERE user_id = $1`,
		userID,
	).Scan(&wallet.UserID, &wallet.Balance, &wallet.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Wallet{UserID: userID, Balance: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("repository: failed to get wallet for user %d: %w", userID, err)
	}

	return wallet, nil
}
