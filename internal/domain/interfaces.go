package domain

import "context"

// UserRepository определяет методы для работы с пользователями и реферальным деревом
type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByReferralCode(ctx context.Context, code string) (*User, error)
	GetChildren(ctx context.Context, parentIDs []int64) ([]Descendant, error)
	ApplyReferral(ctx context.Context, userID, referrerID int64, code string) error
	ListUserIDs(ctx context.Context) ([]int64, error)
	CountDirectReferrals(ctx context.Context, userID int64) (int64, error)
}

// OrderRepository определяет методы для работы с заказами и объемами
type OrderRepository interface {
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	TransitionPaymentStatus(ctx context.Context, id int64, from, to PaymentStatus) (bool, error)
	GetUnprocessedPaidOrders(ctx context.Context, limit int) ([]*Order, error)
	SumPaidOrders(ctx context.Context, userIDs []int64, period Period) (Volume, error)
}

// LedgerRepository определяет методы бонусного журнала
type LedgerRepository interface {
	CreditOrder(ctx context.Context, orderID int64, planner CreditPlanner) (*CreditResult, error)
	GetEntriesByUser(ctx context.Context, userID int64, limit int) ([]*LedgerEntry, error)
	SumEarnings(ctx context.Context, userID int64, period Period) (Earnings, error)
}

// WalletRepository определяет методы чтения кошельков
type WalletRepository interface {
	GetWallet(ctx context.Context, userID int64) (*Wallet, error)
}

// SettingsRepository определяет методы хранения реферальных настроек
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*ReferralSettings, error)
	UpsertSettings(ctx context.Context, settings ReferralSettings) (*ReferralSettings, error)
}

// LevelRepository определяет методы таблицы MLM-уровней
type LevelRepository interface {
	ListLevels(ctx context.Context) ([]MLMLevel, error)
	GetLevel(ctx context.Context, level int) (*MLMLevel, error)
	ReplaceLevels(ctx context.Context, levels []MLMLevel) error
}

// ProcessingLogRepository определяет методы журнала обработки заказов
type ProcessingLogRepository interface {
	AppendProcessingLog(ctx context.Context, entry ProcessingLogEntry) error
	GetProcessingLog(ctx context.Context, orderID int64) ([]*ProcessingLogEntry, error)
}

// NetworkService определяет методы обхода сети и отчетов
type NetworkService interface {
	GetDescendants(ctx context.Context, rootID int64, maxDepth int) ([]Descendant, error)
	GetUserReport(ctx context.Context, userID int64, opts ReportOptions) (*NetworkReport, error)
	GetAllReports(ctx context.Context, opts ReportOptions) ([]*NetworkReport, error)
}

// RankService определяет методы работы с уровнями
type RankService interface {
	ListLevels(ctx context.Context) ([]MLMLevel, error)
	GetLevel(ctx context.Context, level int) (*MLMLevel, error)
	ReplaceLevels(ctx context.Context, levels []MLMLevel) error
	GetUserStatus(ctx context.Context, userID int64) (*RankStatus, error)
}

// CommissionService определяет методы начисления комиссий
type CommissionService interface {
	ProcessPaidOrder(ctx context.Context, orderID int64) (*CreditResult, error)
	GetProcessingLog(ctx context.Context, orderID int64) ([]*ProcessingLogEntry, error)
}

// OrderService определяет переходы статуса оплаты
type OrderService interface {
	MarkPaid(ctx context.Context, orderID int64) (*CreditResult, error)
	MarkFailed(ctx context.Context, orderID int64) error
}

// ReferralService определяет методы работы с реферальными кодами
type ReferralService interface {
	ApplyCode(ctx context.Context, userID int64, code string) (*User, error)
	ValidateCode(ctx context.Context, userID int64, code string) (*User, error)
	GetStats(ctx context.Context, userID int64) (*ReferralStats, error)
}

// SettingsService определяет методы реферальных настроек
type SettingsService interface {
	GetSettings(ctx context.Context) (*ReferralSettings, error)
	UpdateSettings(ctx context.Context, settings ReferralSettings) (*ReferralSettings, error)
}

// BalanceService определяет методы работы с балансом
type BalanceService interface {
	GetWallet(ctx context.Context, userID int64) (*Wallet, error)
	GetBonusHistory(ctx context.Context, userID int64) ([]*LedgerEntry, error)
}

// Notifier отправляет уведомления о начисленных бонусах
type Notifier interface {
	NotifyBonus(ctx context.Context, credit Credit, buyerName string) error
}
