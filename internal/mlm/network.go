package mlm

import "github.com/vitawin/referral-engine/internal/domain"

// BreakdownLevels количество уровней в разбивке структуры сети
const BreakdownLevels = 16

// BuildNetworkStructure считает размер сети по списку нижней линии.
// Разбивка по уровням всегда содержит ключи 1..16.
func BuildNetworkStructure(descendants []domain.Descendant) domain.NetworkStructure {
	breakdown := make(map[int]int, BreakdownLevels)
	for level := 1; level <= BreakdownLevels; level++ {
		breakdown[level] = 0
	}

	structure := domain.NetworkStructure{
		TotalReferrals: len(descendants),
		LevelBreakdown: breakdown,
	}

	for _, d := range descendants {
		breakdown[d.Level]++
		if d.Level == 1 {
			structure.DirectReferrals++
		}
		if d.Level > structure.MaxDepth {
			structure.MaxDepth = d.Level
		}
	}

	return structure
}

// DescendantIDs возвращает идентификаторы пользователей нижней линии
func DescendantIDs(descendants []domain.Descendant) []int64 {
	ids := make([]int64, 0, len(descendants))
	for _, d := range descendants {
		ids = append(ids, d.UserID)
	}
	return ids
}
