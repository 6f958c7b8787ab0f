// Package mlm содержит чистые алгоритмы реферальной программы:
// план начислений по заказу, оценку ранга и структуру сети.
// Пакет не выполняет ввода-вывода.
package mlm

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 округляет сумму до копеек (половина вверх)
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent возвращает округленную долю rate процентов от amount
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate).Div(hundred))
}
