package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "referral-engine"

// initLogger создает логгер. LOG_LEVEL=production включает JSON-вывод,
// остальные значения задают уровень development-логгера.
func initLogger(logLevel string) (*zap.Logger, error) {
	var cfg zap.Config

	if strings.EqualFold(logLevel, "production") {
		cfg = zap.NewProductionConfig()
	} else {
		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: unknown log level %q", logLevel)
		}
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := cfg.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
