package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/vitawin/referral-engine/internal/domain"
	"go.uber.org/zap"
)

// MLMHandler обслуживает статус, уровни и отчеты по сети
type MLMHandler struct {
	network   domain.NetworkService
	rank      domain.RankService
	logger    *zap.Logger
	validator *validator.Validate
	now       func() time.Time
}

// NewMLMHandler создает новый MLMHandler
func NewMLMHandler(network domain.NetworkService, rank domain.RankService, logger *zap.Logger) *MLMHandler {
	return &MLMHandler{
		network:   network,
		rank:      rank,
		logger:    logger,
		validator: validator.New(),
		now:       time.Now,
	}
}

type replaceLevelsRequest struct {
	Levels []domain.MLMLevel `json:"levels" validate:"required,min=1,max=16,dive"`
}

// GetStatus возвращает MLM-статус текущего пользователя
func (h *MLMHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	status, err := h.rank.GetUserStatus(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err, "failed to get mlm status")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, status)
}

// ListLevels возвращает таблицу уровней
func (h *MLMHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.rank.ListLevels(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to list mlm levels")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, levels)
}

// GetLevel возвращает один уровень по номеру
func (h *MLMHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	l, err := h.rank.GetLevel(r.Context(), level)
	if err != nil {
		writeError(w, h.logger, err, "failed to get mlm level")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, l)
}

// ReplaceLevels заменяет таблицу уровней
func (h *MLMHandler) ReplaceLevels(w http.ResponseWriter, r *http.Request) {
	var req replaceLevelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := h.rank.ReplaceLevels(r.Context(), req.Levels); err != nil {
		writeError(w, h.logger, err, "failed to replace mlm levels")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetNetworkReports возвращает отчеты по сетям всех пользователей
func (h *MLMHandler) GetNetworkReports(w http.ResponseWriter, r *http.Request) {
	opts, err := parseReportOptions(r, h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reports, err := h.network.GetAllReports(r.Context(), opts)
	if err != nil {
		writeError(w, h.logger, err, "failed to build network reports")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, reports)
}

// GetUserNetworkReport возвращает отчет по сети одного пользователя
func (h *MLMHandler) GetUserNetworkReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	opts, err := parseReportOptions(r, h.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.network.GetUserReport(r.Context(), userID, opts)
	if err != nil {
		writeError(w, h.logger, err, "failed to build network report")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, report)
}

// RecalculateUser пересчитывает ранг пользователя по текущим данным
func (h *MLMHandler) RecalculateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	status, err := h.rank.GetUserStatus(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err, "failed to recalculate mlm status")
		return
	}

	h.logger.Info("mlm status recalculated",
		zap.Int64("user_id", userID),
		zap.Int("level", status.CurrentLevel),
	)
	writeJSON(w, h.logger, http.StatusOK, status)
}
