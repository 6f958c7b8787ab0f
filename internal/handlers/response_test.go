package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitawin/referral-engine/internal/domain"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrOrderNotFound, http.StatusNotFound},
		{domain.ErrLevelNotFound, http.StatusNotFound},
		{domain.ErrReferralCodeNotFound, http.StatusNotFound},
		{domain.ErrInvalidReferralCode, http.StatusBadRequest},
		{domain.ErrSelfReferral, http.StatusBadRequest},
		{domain.ErrReferralAlreadyApplied, http.StatusConflict},
		{domain.ErrReferralCycle, http.StatusConflict},
		{domain.ErrInvalidStatusTransition, http.StatusConflict},
		{domain.ErrOrderNotPaid, http.StatusConflict},
		{fmt.Errorf("%w: total too high", domain.ErrInvalidSettings), http.StatusUnprocessableEntity},
		{domain.ErrInvalidLevels, http.StatusUnprocessableEntity},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
