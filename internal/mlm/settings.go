package mlm

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vitawin/referral-engine/internal/domain"
)

// MaxTotalCommission предельная сумма процентов трех уровней
var MaxTotalCommission = decimal.NewFromInt(50)

// SettingsScale число знаков после запятой, которое хранит NUMERIC(5,2)
const SettingsScale = 2

// ValidateSettings проверяет проценты реферальной программы
func ValidateSettings(s domain.ReferralSettings) error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"level1_commission", s.Level1Commission},
		{"level2_commission", s.Level2Commission},
		{"level3_commission", s.Level3Commission},
		{"bonus_coins_percentage", s.BonusCoinsPercentage},
	}

	for _, f := range fields {
		if f.value.IsNegative() || f.value.GreaterThan(hundred) {
			return fmt.Errorf("%w: %s must be between 0 and 100", domain.ErrInvalidSettings, f.name)
		}
		if !f.value.Equal(f.value.Round(SettingsScale)) {
			return fmt.Errorf("%w: %s allows at most %d decimal places", domain.ErrInvalidSettings, f.name, SettingsScale)
		}
	}

	total := s.Level1Commission.Add(s.Level2Commission).Add(s.Level3Commission)
	if total.GreaterThan(MaxTotalCommission) {
		return fmt.Errorf("%w: total commission %s exceeds %s", domain.ErrInvalidSettings, total, MaxTotalCommission)
	}

	return nil
}

// ValidateLevels проверяет таблицу рангов: номера 1..16 без повторов,
// непустые названия и неотрицательные пороги
func ValidateLevels(levels []domain.MLMLevel) error {
	if len(levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", domain.ErrInvalidLevels)
	}

	seen := make(map[int]bool, len(levels))
	for _, l := range levels {
		switch {
		case l.Level < 1 || l.Level > BreakdownLevels:
			return fmt.Errorf("%w: level %d out of range 1..%d", domain.ErrInvalidLevels, l.Level, BreakdownLevels)
		case seen[l.Level]:
			return fmt.Errorf("%w: duplicate level %d", domain.ErrInvalidLevels, l.Level)
		case l.Name == "":
			return fmt.Errorf("%w: level %d has empty name", domain.ErrInvalidLevels, l.Level)
		case l.RequiredReferrals < 0 || l.RequiredPersonalVolume.IsNegative() || l.RequiredGroupVolume.IsNegative():
			return fmt.Errorf("%w: level %d has negative threshold", domain.ErrInvalidLevels, l.Level)
		case l.Percentage.IsNegative() || l.Percentage.GreaterThan(hundred):
			return fmt.Errorf("%w: level %d percentage out of range", domain.ErrInvalidLevels, l.Level)
		}
		seen[l.Level] = true
	}

	return nil
}
