package mlm

import "github.com/vitawin/referral-engine/internal/domain"

// BonusTypeForLevel возвращает тип записи журнала для уровня цепочки
func BonusTypeForLevel(level int) domain.BonusType {
	switch {
	case level == domain.BonusCoinsLevel:
		return domain.BonusTypeBonusCoins
	case level == 1:
		return domain.BonusTypeReferral
	default:
		return domain.BonusTypeLevel
	}
}

// PlanCredits строит начисления по оплаченному заказу.
//
// Предок уровня N (1..3) получает total * levelN_commission / 100,
// покупатель получает total * bonus_coins_percentage / 100 на уровне 0.
// Отсутствующие уровни и нулевые суммы пропускаются.
func PlanCredits(order domain.Order, chain []domain.Ancestor, settings domain.ReferralSettings) []domain.Credit {
	credits := make([]domain.Credit, 0, len(chain)+1)
	seen := make(map[int]bool, len(chain))

	for _, ancestor := range chain {
		if ancestor.Level < 1 || ancestor.Level > domain.MaxCommissionLevels || seen[ancestor.Level] {
			continue
		}
		// покупатель не может получать комиссию с собственного заказа
		if ancestor.UserID == order.UserID {
			continue
		}
		seen[ancestor.Level] = true

		rate := settings.CommissionRate(ancestor.Level)
		amount := Percent(order.Total, rate)
		if !amount.IsPositive() {
			continue
		}

		credits = append(credits, domain.Credit{
			UserID:     ancestor.UserID,
			TelegramID: ancestor.TelegramID,
			Level:      ancestor.Level,
			Rate:       rate,
			Amount:     amount,
			Type:       BonusTypeForLevel(ancestor.Level),
		})
	}

	coins := Percent(order.Total, settings.BonusCoinsPercentage)
	if coins.IsPositive() {
		credits = append(credits, domain.Credit{
			UserID: order.UserID,
			Level:  domain.BonusCoinsLevel,
			Rate:   settings.BonusCoinsPercentage,
			Amount: coins,
			Type:   domain.BonusTypeBonusCoins,
		})
	}

	return credits
}

var _ domain.CreditPlanner = PlanCredits
