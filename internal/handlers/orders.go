package handlers

import (
	"net/http"

	"github.com/vitawin/referral-engine/internal/domain"
	"go.uber.org/zap"
)

// OrdersHandler принимает события оплаты заказов и управляет начислениями
type OrdersHandler struct {
	orders      domain.OrderService
	commissions domain.CommissionService
	logger      *zap.Logger
}

// NewOrdersHandler создает новый OrdersHandler
func NewOrdersHandler(orders domain.OrderService, commissions domain.CommissionService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orders:      orders,
		commissions: commissions,
		logger:      logger,
	}
}

// MarkPaid отмечает заказ оплаченным и начисляет бонусы
func (h *OrdersHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(r, "orderID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.orders.MarkPaid(r.Context(), orderID)
	if err != nil {
		writeError(w, h.logger, err, "failed to mark order paid")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// MarkFailed отмечает оплату заказа неуспешной
func (h *OrdersHandler) MarkFailed(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(r, "orderID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.orders.MarkFailed(r.Context(), orderID); err != nil {
		writeError(w, h.logger, err, "failed to mark order failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ProcessCommissions повторно запускает начисление по оплаченному заказу
func (h *OrdersHandler) ProcessCommissions(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(r, "orderID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.commissions.ProcessPaidOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, h.logger, err, "failed to process order commissions")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// GetProcessingLog возвращает журнал обработки заказа
func (h *OrdersHandler) GetProcessingLog(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(r, "orderID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	entries, err := h.commissions.GetProcessingLog(r.Context(), orderID)
	if err != nil {
		writeError(w, h.logger, err, "failed to get processing log")
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, entries)
}
