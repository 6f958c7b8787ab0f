package app

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vitawin/referral-engine/internal/config"
	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/handlers"
	"github.com/vitawin/referral-engine/internal/metrics"
	"github.com/vitawin/referral-engine/internal/notify"
	"github.com/vitawin/referral-engine/internal/repository/postgres"
	"github.com/vitawin/referral-engine/internal/service"
	"github.com/vitawin/referral-engine/internal/utils/jwt"
	"github.com/vitawin/referral-engine/internal/worker"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user          domain.UserRepository
	order         domain.OrderRepository
	ledger        domain.LedgerRepository
	wallet        domain.WalletRepository
	settings      domain.SettingsRepository
	level         domain.LevelRepository
	processingLog domain.ProcessingLogRepository
}

// services содержит все сервисы приложения
type services struct {
	network    domain.NetworkService
	rank       domain.RankService
	commission domain.CommissionService
	order      domain.OrderService
	referral   domain.ReferralService
	settings   domain.SettingsService
	balance    domain.BalanceService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	mlm      *handlers.MLMHandler
	referral *handlers.ReferralHandler
	settings *handlers.SettingsHandler
	orders   *handlers.OrdersHandler
	balance  *handlers.BalanceHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	metrics    *metrics.Metrics
	registry   *prometheus.Registry
	// notifications ожидает фоновые уведомления при остановке
	notifications *service.CommissionService
}

// initNotifier создает Telegram-уведомления или отключает их при пустом токене
func initNotifier(token string, logger *zap.Logger) (domain.Notifier, error) {
	if token == "" {
		logger.Warn("TELEGRAM_BOT_TOKEN is not set, bonus notifications are disabled")
		return notify.Noop{}, nil
	}

	notifier, err := notify.NewTelegramNotifier(token, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram notifier: %w", err)
	}
	return notifier, nil
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		user:          postgres.NewUserRepository(dbPool),
		order:         postgres.NewOrderRepository(dbPool),
		ledger:        postgres.NewLedgerRepository(dbPool),
		wallet:        postgres.NewWalletRepository(dbPool),
		settings:      postgres.NewSettingsRepository(dbPool),
		level:         postgres.NewLevelRepository(dbPool),
		processingLog: postgres.NewProcessingLogRepository(dbPool),
	}

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	notifier, err := initNotifier(cfg.TelegramBotToken, logger)
	if err != nil {
		return nil, err
	}

	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание сервисов
	volumes := service.NewVolumeAggregator(repos.order)
	network := service.NewNetworkService(repos.user, repos.ledger, repos.level, volumes, service.NetworkConfig{
		MaxDepth:          cfg.NetworkMaxDepth,
		ReportConcurrency: cfg.ReportConcurrency,
	}, logger)
	commission := service.NewCommissionService(repos.ledger, repos.processingLog, notifier, m, logger)

	svcs := &services{
		network:    network,
		rank:       service.NewRankService(repos.level, network, volumes, logger),
		commission: commission,
		order:      service.NewOrderService(repos.order, commission),
		referral:   service.NewReferralService(repos.user, repos.ledger),
		settings:   service.NewSettingsService(repos.settings, logger),
		balance:    service.NewBalanceService(repos.wallet, repos.ledger),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		mlm:      handlers.NewMLMHandler(svcs.network, svcs.rank, logger),
		referral: handlers.NewReferralHandler(svcs.referral, logger),
		settings: handlers.NewSettingsHandler(svcs.settings, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, svcs.commission, logger),
		balance:  handlers.NewBalanceHandler(svcs.balance, logger),
		health:   handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание worker pool
	workerPool := worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		cfg.WorkerScanInterval,
		repos.order,
		svcs.commission,
		logger,
	)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
		metrics:    m,
		registry:   registry,

		notifications: commission,
	}, nil
}
