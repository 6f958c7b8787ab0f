package service

import "errors"

// isOneOf проверяет, что err является одной из перечисленных sentinel-ошибок.
// Такие ошибки возвращаются вызывающему без обертки.
func isOneOf(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
