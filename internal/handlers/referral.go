package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vitawin/referral-engine/internal/domain"
	"go.uber.org/zap"
)

// ReferralHandler обслуживает реферальные коды пользователя
type ReferralHandler struct {
	referral  domain.ReferralService
	logger    *zap.Logger
	validator *validator.Validate
}

// NewReferralHandler создает новый ReferralHandler
func NewReferralHandler(referral domain.ReferralService, logger *zap.Logger) *ReferralHandler {
	return &ReferralHandler{
		referral:  referral,
		logger:    logger,
		validator: validator.New(),
	}
}

// referralCodeRequest принимает код в snake_case и camelCase
type referralCodeRequest struct {
	ReferralCode      string `json:"referral_code" validate:"max=64"`
	ReferralCodeCamel string `json:"referralCode" validate:"max=64"`
}

func (r referralCodeRequest) code() string {
	if r.ReferralCode != "" {
		return r.ReferralCode
	}
	return r.ReferralCodeCamel
}

type referrerResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	Username     string `json:"username,omitempty"`
	ReferralCode string `json:"referral_code"`
}

type applyReferralResponse struct {
	Success  bool             `json:"success"`
	Referrer referrerResponse `json:"referrer"`
}

type validateReferralResponse struct {
	Valid    bool              `json:"valid"`
	Referrer *referrerResponse `json:"referrer,omitempty"`
	Reason   string            `json:"reason,omitempty"`
}

func newReferrerResponse(u *domain.User) referrerResponse {
	return referrerResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		Username:     u.Username,
		ReferralCode: u.ReferralCode,
	}
}

func (h *ReferralHandler) decode(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req referralCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return "", false
	}
	if err := h.validator.Struct(req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return "", false
	}
	return req.code(), true
}

// GetStats возвращает реферальную статистику пользователя
func (h *ReferralHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.referral.GetStats(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err, "failed to get referral stats")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}

// Apply привязывает пользователя к владельцу кода
func (h *ReferralHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	code, ok := h.decode(w, r)
	if !ok {
		return
	}

	referrer, err := h.referral.ApplyCode(r.Context(), userID, code)
	if err != nil {
		writeError(w, h.logger, err, "failed to apply referral code")
		return
	}

	h.logger.Info("referral code applied",
		zap.Int64("user_id", userID),
		zap.Int64("referrer_id", referrer.ID),
	)
	writeJSON(w, h.logger, http.StatusOK, applyReferralResponse{
		Success:  true,
		Referrer: newReferrerResponse(referrer),
	})
}

// Validate проверяет код без привязки. Недействительный код не является
// ошибкой запроса и возвращается с valid=false.
func (h *ReferralHandler) Validate(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	code, ok := h.decode(w, r)
	if !ok {
		return
	}

	referrer, err := h.referral.ValidateCode(r.Context(), userID, code)
	if err != nil {
		if status := statusFor(err); status != http.StatusInternalServerError {
			writeJSON(w, h.logger, http.StatusOK, validateReferralResponse{Reason: err.Error()})
			return
		}
		writeError(w, h.logger, err, "failed to validate referral code")
		return
	}

	resp := newReferrerResponse(referrer)
	writeJSON(w, h.logger, http.StatusOK, validateReferralResponse{Valid: true, Referrer: &resp})
}
