package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/vitawin/referral-engine/internal/domain"
	"github.com/vitawin/referral-engine/internal/mlm"
	"go.uber.org/zap"
)

// SettingsHandler обслуживает реферальные настройки
type SettingsHandler struct {
	settings  domain.SettingsService
	logger    *zap.Logger
	validator *validator.Validate
}

// NewSettingsHandler создает новый SettingsHandler
func NewSettingsHandler(settings domain.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settings:  settings,
		logger:    logger,
		validator: validator.New(),
	}
}

// проценты читаются без потери точности
type settingsRequest struct {
	Level1Commission     *decimal.Decimal `json:"level1_commission" validate:"required"`
	Level2Commission     *decimal.Decimal `json:"level2_commission" validate:"required"`
	Level3Commission     *decimal.Decimal `json:"level3_commission" validate:"required"`
	BonusCoinsPercentage *decimal.Decimal `json:"bonus_coins_percentage" validate:"required"`
}

func (r settingsRequest) toDomain() domain.ReferralSettings {
	return domain.ReferralSettings{
		Level1Commission:     *r.Level1Commission,
		Level2Commission:     *r.Level2Commission,
		Level3Commission:     *r.Level3Commission,
		BonusCoinsPercentage: *r.BonusCoinsPercentage,
	}
}

// Get возвращает действующие настройки
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetSettings(r.Context())
	if err != nil {
		writeError(w, h.logger, err, "failed to get referral settings")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, settings)
}

// Update сохраняет новые настройки
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	settings := req.toDomain()
	if err := mlm.ValidateSettings(settings); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	saved, err := h.settings.UpdateSettings(r.Context(), settings)
	if err != nil {
		writeError(w, h.logger, err, "failed to update referral settings")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, saved)
}
