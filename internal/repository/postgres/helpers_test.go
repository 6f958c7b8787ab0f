package postgres

import (
	"github.com/shopspring/decimal"
)

// decimalArg сравнивает аргумент запроса с десятичным значением без учета масштаба
type decimalArg string

func (a decimalArg) Match(v interface{}) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(decimal.RequireFromString(string(a)))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func int64Ptr(v int64) *int64 {
	return &v
}
