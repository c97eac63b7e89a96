package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/piresc/lotaya/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "Unauthorized", err: models.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantMsg: "Invalid token"},
		{name: "User not found", err: fmt.Errorf("deduct: %w", models.ErrUserNotFound), wantStatus: http.StatusNotFound, wantMsg: "User not found"},
		{name: "Payment not found", err: models.ErrPaymentNotFound, wantStatus: http.StatusNotFound, wantMsg: "Payment not found"},
		{name: "Insufficient credits", err: models.ErrInsufficientCredits, wantStatus: http.StatusBadRequest, wantMsg: "Insufficient credits"},
		{name: "Invalid amount", err: models.ErrInvalidAmount, wantStatus: http.StatusBadRequest, wantMsg: "Amount must be positive"},
		{name: "Amount too large", err: fmt.Errorf("%w: at most 10 credits", models.ErrAmountTooLarge), wantStatus: http.StatusBadRequest, wantMsg: "Amount exceeds the top-up limit"},
		{name: "Invalid signature stays generic", err: models.ErrInvalidSignature, wantStatus: http.StatusBadRequest, wantMsg: "Invalid request"},
		{name: "Duplicate", err: models.ErrDuplicateRegistration, wantStatus: http.StatusConflict, wantMsg: "Email already registered"},
		{name: "Upstream", err: models.ErrUpstreamUnavailable, wantStatus: http.StatusServiceUnavailable, wantMsg: "Upstream service unavailable"},
		{name: "Unknown", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantMsg: "Failed to deduct credits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := StatusForError(tt.err, "Failed to deduct credits")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestDomainErrorResponse(t *testing.T) {
	c, rec := newContext()

	err := DomainErrorResponse(c, models.ErrInsufficientCredits, "Failed")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Insufficient credits")
}
