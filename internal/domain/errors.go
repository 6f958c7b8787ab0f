package domain

import "errors"

// Ошибки пользователей и реферальных кодов
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidReferralCode    = errors.New("invalid referral code")
	ErrReferralCodeNotFound   = errors.New("referral code not found")
	ErrSelfReferral           = errors.New("cannot apply own referral code")
	ErrReferralAlreadyApplied = errors.New("referral code already applied")
	ErrReferralCycle          = errors.New("referral cycle detected")
)

// Ошибки заказов
var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderNotPaid            = errors.New("order is not paid")
	ErrInvalidStatusTransition = errors.New("invalid payment status transition")
)

// Ошибки начислений
var (
	ErrCommissionAlreadyProcessed = errors.New("commission already processed for this order")
	ErrDuplicateCredit            = errors.New("ledger entry already exists for this order and level")
)

// Ошибки настроек и уровней
var (
	ErrInvalidSettings = errors.New("invalid referral settings")
	ErrInvalidLevels   = errors.New("invalid mlm levels")
	ErrLevelNotFound   = errors.New("mlm level not found")
)
