package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus представляет статус оплаты заказа
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// BonusType представляет тип начисления в бонусном журнале
type BonusType string

const (
	BonusTypeReferral   BonusType = "referral_bonus" // 1-й уровень
	BonusTypeLevel      BonusType = "level_bonus"    // 2-й и 3-й уровни
	BonusTypeBonusCoins BonusType = "bonus_coins"    // кешбэк покупателю
)

// EntryStatus представляет статус записи журнала
type EntryStatus string

const (
	EntryStatusCompleted EntryStatus = "completed"
	EntryStatusPending   EntryStatus = "pending"
)

// MaxCommissionLevels количество уровней реферальной цепочки, получающих комиссию
const MaxCommissionLevels = 3

// BonusCoinsLevel уровень журнала для начисления бонусных монет самому покупателю
const BonusCoinsLevel = 0

// User представляет пользователя с MLM-полями
type User struct {
	ID                  int64     `json:"id"`
	TelegramID          int64     `json:"telegram_id"`
	FirstName           string    `json:"first_name"`
	Username            string    `json:"username,omitempty"`
	ReferralCode        string    `json:"referral_code"`
	AppliedReferralCode *string   `json:"applied_referral_code,omitempty"`
	ReferrerID          *int64    `json:"referrer_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// Order представляет заказ в части, нужной для расчета объемов и комиссий
type Order struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"user_id"`
	Total              decimal.Decimal `json:"total"`
	PVEarned           decimal.Decimal `json:"pv_earned"`
	PaymentStatus      PaymentStatus   `json:"payment_status"`
	BonusesProcessedAt *time.Time      `json:"bonuses_processed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// LedgerEntry неизменяемая запись бонусного журнала
type LedgerEntry struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	SourceUserID int64           `json:"source_user_id"`
	OrderID      int64           `json:"order_id"`
	Level        int             `json:"level"`
	Rate         decimal.Decimal `json:"rate"`
	Amount       decimal.Decimal `json:"amount"`
	Type         BonusType       `json:"type"`
	Status       EntryStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Wallet текущий баланс пользователя
type Wallet struct {
	UserID    int64           `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// MLMLevel строка таблицы рангов
type MLMLevel struct {
	Level                  int             `json:"level" validate:"min=1,max=16"`
	Name                   string          `json:"name" validate:"required,max=100"`
	Description            string          `json:"description,omitempty" validate:"max=500"`
	Percentage             decimal.Decimal `json:"percentage"`
	RequiredReferrals      int             `json:"required_referrals" validate:"min=0"`
	RequiredPersonalVolume decimal.Decimal `json:"required_personal_volume"`
	RequiredGroupVolume    decimal.Decimal `json:"required_group_volume"`
}

// ReferralSettings глобальные проценты реферальной программы
type ReferralSettings struct {
	Level1Commission     decimal.Decimal `json:"level1_commission"`
	Level2Commission     decimal.Decimal `json:"level2_commission"`
	Level3Commission     decimal.Decimal `json:"level3_commission"`
	BonusCoinsPercentage decimal.Decimal `json:"bonus_coins_percentage"`
	UpdatedAt            *time.Time      `json:"updated_at,omitempty"`
}

// DefaultReferralSettings значения, действующие пока администратор не сохранил свои
func DefaultReferralSettings() ReferralSettings {
	return ReferralSettings{
		Level1Commission:     decimal.NewFromInt(20),
		Level2Commission:     decimal.NewFromInt(5),
		Level3Commission:     decimal.NewFromInt(1),
		BonusCoinsPercentage: decimal.NewFromInt(5),
	}
}

// CommissionRate возвращает процент для уровня 1..3
func (s ReferralSettings) CommissionRate(level int) decimal.Decimal {
	switch level {
	case 1:
		return s.Level1Commission
	case 2:
		return s.Level2Commission
	case 3:
		return s.Level3Commission
	default:
		return decimal.Zero
	}
}

// Descendant пользователь из нижней линии с уровнем и прямым родителем
type Descendant struct {
	UserID     int64 `json:"user_id"`
	Level      int   `json:"level"`
	ReferrerID int64 `json:"referrer_id"`
}

// Ancestor вышестоящий пользователь в цепочке покупателя
type Ancestor struct {
	UserID     int64  `json:"user_id"`
	TelegramID int64  `json:"telegram_id"`
	FirstName  string `json:"first_name"`
	Level      int    `json:"level"`
}

// Credit одно запланированное начисление по заказу
type Credit struct {
	UserID     int64           `json:"user_id"`
	TelegramID int64           `json:"-"`
	Level      int             `json:"level"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
	Type       BonusType       `json:"type"`
}

// CreditPlanner строит начисления по заказу, цепочке предков и настройкам.
// Не выполняет ввода-вывода.
type CreditPlanner func(order Order, chain []Ancestor, settings ReferralSettings) []Credit

// CreditResult итог обработки оплаченного заказа
type CreditResult struct {
	OrderID          int64    `json:"order_id"`
	BuyerID          int64    `json:"buyer_id"`
	BuyerName        string   `json:"buyer_name"`
	Credits          []Credit `json:"credits"`
	AlreadyProcessed bool     `json:"already_processed"`
}

// Period необязательный диапазон дат (границы включительно)
type Period struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Volume агрегат по оплаченным заказам
type Volume struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalPV     decimal.Decimal `json:"totalPV"`
	OrdersCount int64           `json:"ordersCount"`
}

// NetworkStructure структура сети пользователя
type NetworkStructure struct {
	TotalReferrals  int         `json:"totalReferrals"`
	DirectReferrals int         `json:"directReferrals"`
	LevelBreakdown  map[int]int `json:"levelBreakdown"`
	MaxDepth        int         `json:"maxDepth"`
}

// Earnings заработанные бонусы по типам
type Earnings struct {
	TotalEarned     decimal.Decimal `json:"totalEarned"`
	ReferralBonuses decimal.Decimal `json:"referralBonuses"`
	LevelBonuses    decimal.Decimal `json:"levelBonuses"`
}

// NetworkReport отчет по сети пользователя для админки
type NetworkReport struct {
	UserID         int64            `json:"userId"`
	FirstName      string           `json:"firstName"`
	Username       string           `json:"username"`
	TelegramID     int64            `json:"telegramId"`
	ReferralCode   string           `json:"referralCode"`
	CurrentLevel   int              `json:"currentLevel"`
	PersonalVolume Volume           `json:"personalVolume"`
	GroupVolume    Volume           `json:"groupVolume"`
	Network        NetworkStructure `json:"network"`
	Earnings       Earnings         `json:"earnings"`
}

// ReportOptions параметры построения отчета
type ReportOptions struct {
	Period   Period
	MaxDepth int
}

// RankStatus MLM-статус пользователя
type RankStatus struct {
	UserID           int64           `json:"user_id"`
	CurrentLevel     int             `json:"currentLevel"`
	CurrentLevelInfo *MLMLevel       `json:"currentLevelInfo,omitempty"`
	NextLevel        *MLMLevel       `json:"nextLevel"`
	RequiredForNext  int             `json:"requiredReferrals"`
	TotalReferrals   int             `json:"totalReferrals"`
	PersonalPV       decimal.Decimal `json:"personalPV"`
	GroupPV          decimal.Decimal `json:"groupPV"`
}

// ReferralStats реферальная статистика пользователя
type ReferralStats struct {
	ReferralCode    string          `json:"referral_code"`
	TotalReferrals  int64           `json:"total_referrals"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	RecentReferrals []*LedgerEntry  `json:"recent_referrals"`
}

// ProcessingStage этап обработки оплаченного заказа
type ProcessingStage string

const (
	StageStarted  ProcessingStage = "started"
	StageCredited ProcessingStage = "credited"
	StageSkipped  ProcessingStage = "skipped"
	StageFailed   ProcessingStage = "failed"
)

// ProcessingLogEntry запись журнала обработки заказа
type ProcessingLogEntry struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	RunID     string          `json:"run_id"`
	Stage     ProcessingStage `json:"stage"`
	Details   map[string]any  `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
