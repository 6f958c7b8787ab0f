package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultJWTSecret = "default-secret-key-change-in-production"

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди заказов
	WorkerScanInterval time.Duration // Интервал поиска необработанных оплаченных заказов

	// Telegram, пустой токен отключает уведомления
	TelegramBotToken string

	// MLM
	NetworkMaxDepth   int // Максимальная глубина обхода сети
	ReportConcurrency int // Количество отчетов, строящихся параллельно
}

// defaults возвращает конфигурацию по умолчанию
func defaults() *Config {
	return &Config{
		RunAddress:         ":8080",
		JWTSecret:          defaultJWTSecret,
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		NetworkMaxDepth:    16,
		ReportConcurrency:  20,
	}
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	return load(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

func load(fs *flag.FlagSet, args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := defaults()

	// Определяем флаги
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if v, ok := lookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = v
	}

	if v, ok := lookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = v
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if v, ok := lookupEnv("JWT_SECRET"); ok && v != "" {
		cfg.JWTSecret = v
	}

	// Уровень логирования
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	if v, ok := lookupEnv("TELEGRAM_BOT_TOKEN"); ok {
		cfg.TelegramBotToken = v
	}

	// Числовые параметры, некорректные значения игнорируются
	positiveInt(lookupEnv, "WORKER_POOL_SIZE", &cfg.WorkerPoolSize)
	positiveInt(lookupEnv, "WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize)
	positiveInt(lookupEnv, "NETWORK_MAX_DEPTH", &cfg.NetworkMaxDepth)
	positiveInt(lookupEnv, "REPORT_CONCURRENCY", &cfg.ReportConcurrency)

	if v, ok := lookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(v); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}

func positiveInt(lookupEnv func(string) (string, bool), key string, dst *int) {
	v, ok := lookupEnv(key)
	if !ok {
		return
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		*dst = n
	}
}
