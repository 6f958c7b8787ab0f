package mlm

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vitawin/referral-engine/internal/domain"
)

// DefaultLevel уровень пользователя при пустой таблице рангов
const DefaultLevel = 1

// RankMetrics показатели пользователя, по которым определяется ранг
type RankMetrics struct {
	Referrals  int
	PersonalPV decimal.Decimal
	GroupPV    decimal.Decimal
}

// RankResult результат оценки ранга
type RankResult struct {
	CurrentLevel    int
	Current         *domain.MLMLevel
	NextLevel       *domain.MLMLevel
	RequiredForNext int
}

// SortLevels возвращает копию таблицы, упорядоченную по номеру уровня
func SortLevels(levels []domain.MLMLevel) []domain.MLMLevel {
	sorted := make([]domain.MLMLevel, len(levels))
	copy(sorted, levels)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level < sorted[j].Level
	})
	return sorted
}

// Qualifies проверяет, выполнены ли все пороги уровня
func Qualifies(level domain.MLMLevel, m RankMetrics) bool {
	return m.Referrals >= level.RequiredReferrals &&
		m.PersonalPV.GreaterThanOrEqual(level.RequiredPersonalVolume) &&
		m.GroupPV.GreaterThanOrEqual(level.RequiredGroupVolume)
}

// EvaluateRank определяет текущий и следующий уровень.
// Текущий уровень - последний по порядку уровень, все пороги которого выполнены,
// либо самый младший уровень таблицы.
func EvaluateRank(levels []domain.MLMLevel, m RankMetrics) RankResult {
	if len(levels) == 0 {
		return RankResult{CurrentLevel: DefaultLevel}
	}

	sorted := SortLevels(levels)

	currentIdx := 0
	for i, level := range sorted {
		if Qualifies(level, m) {
			currentIdx = i
		}
	}

	current := sorted[currentIdx]
	result := RankResult{
		CurrentLevel: current.Level,
		Current:      &current,
	}

	if currentIdx+1 < len(sorted) {
		next := sorted[currentIdx+1]
		result.NextLevel = &next
		if need := next.RequiredReferrals - m.Referrals; need > 0 {
			result.RequiredForNext = need
		}
	}

	return result
}
