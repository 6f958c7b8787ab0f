// Package metrics содержит Prometheus-метрики сервиса
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/vitawin/referral-engine/internal/domain"
)

const namespace = "referral_engine"

// Metrics хранит все метрики сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Начисления
	OrdersProcessed     *prometheus.CounterVec
	OrderProcessing     *prometheus.HistogramVec
	BonusesCredited     *prometheus.CounterVec
	BonusAmountCredited *prometheus.CounterVec
}

// New создает и регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		OrdersProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_processed_total",
				Help:      "Paid orders passed through commission processing",
			},
			[]string{"outcome"}, // credited, skipped, failed
		),
		OrderProcessing: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "order_processing_duration_seconds",
				Help:      "Commission processing duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"outcome"},
		),
		BonusesCredited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bonuses_credited_total",
				Help:      "Ledger entries written",
			},
			[]string{"type"},
		),
		BonusAmountCredited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bonus_amount_credited_total",
				Help:      "Sum of credited bonus amounts",
			},
			[]string{"type"},
		),
	}
}

// OrderProcessed учитывает обработку одного заказа
func (m *Metrics) OrderProcessed(outcome string, duration time.Duration) {
	m.OrdersProcessed.WithLabelValues(outcome).Inc()
	m.OrderProcessing.WithLabelValues(outcome).Observe(duration.Seconds())
}

// BonusCredited учитывает одно начисление
func (m *Metrics) BonusCredited(bonusType domain.BonusType, amount decimal.Decimal) {
	m.BonusesCredited.WithLabelValues(string(bonusType)).Inc()
	m.BonusAmountCredited.WithLabelValues(string(bonusType)).Add(amount.InexactFloat64())
}

// Middleware собирает метрики HTTP-запросов по шаблону маршрута chi
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler отдает метрики из gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
