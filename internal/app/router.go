package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vitawin/referral-engine/internal/handlers"
	"github.com/vitawin/referral-engine/internal/metrics"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, deps, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(deps.metrics.Middleware)
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	h := deps.handlers

	// Служебные эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Handle("/metrics", metrics.Handler(deps.registry))

	// Публичные эндпоинты
	r.Get("/api/mlm/levels", h.mlm.ListLevels)
	r.Get("/api/mlm/levels/{level}", h.mlm.GetLevel)

	// Эндпоинты пользователя
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))

		r.Get("/api/user/mlm/status", h.mlm.GetStatus)
		r.Get("/api/user/referral/stats", h.referral.GetStats)
		r.Post("/api/user/referral/apply", h.referral.Apply)
		r.Post("/api/user/referral/validate", h.referral.Validate)
		r.Get("/api/user/balance", h.balance.GetBalance)
		r.Get("/api/user/bonuses", h.balance.GetBonuses)
	})

	// Эндпоинты администратора
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))
		r.Use(handlers.AdminOnly)

		r.Get("/mlm/network", h.mlm.GetNetworkReports)
		r.Get("/mlm/network/{userID}", h.mlm.GetUserNetworkReport)
		r.Post("/mlm/users/{userID}/recalculate", h.mlm.RecalculateUser)
		r.Put("/mlm/levels", h.mlm.ReplaceLevels)

		r.Get("/referral-settings", h.settings.Get)
		r.Put("/referral-settings", h.settings.Update)

		r.Post("/orders/{orderID}/paid", h.orders.MarkPaid)
		r.Post("/orders/{orderID}/failed", h.orders.MarkFailed)
		r.Post("/orders/{orderID}/commissions", h.orders.ProcessCommissions)
		r.Get("/orders/{orderID}/processing-log", h.orders.GetProcessingLog)
	})
}
