package service

import (
	"github.com/shopspring/decimal"
	"github.com/vitawin/referral-engine/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func int64Ptr(v int64) *int64 {
	return &v
}

// testLevels небольшая таблица рангов с порогами по всем трем показателям
func testLevels() []domain.MLMLevel {
	return []domain.MLMLevel{
		{Level: 1, Name: "Актив", Percentage: dec("25")},
		{Level: 2, Name: "Актив +", Percentage: dec("5"), RequiredReferrals: 1},
		{Level: 3, Name: "Актив pro", Percentage: dec("9"), RequiredReferrals: 2, RequiredGroupVolume: dec("400")},
		{Level: 4, Name: "Партнер", Percentage: dec("8"), RequiredReferrals: 3, RequiredPersonalVolume: dec("100")},
	}
}
