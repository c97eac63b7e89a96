package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/models"
)

// StatusForError maps a domain error to its HTTP status and public message.
// Unknown errors map to 500 with the given fallback message.
func StatusForError(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, models.ErrPaymentNotFound):
		return http.StatusNotFound, "Payment not found"
	case errors.Is(err, models.ErrInsufficientCredits):
		return http.StatusBadRequest, "Insufficient credits"
	case errors.Is(err, models.ErrInvalidAmount):
		return http.StatusBadRequest, "Amount must be positive"
	case errors.Is(err, models.ErrAmountTooLarge):
		return http.StatusBadRequest, "Amount exceeds the top-up limit"
	case errors.Is(err, models.ErrInvalidSignature):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, models.ErrDuplicateRegistration):
		return http.StatusConflict, "Email already registered"
	case errors.Is(err, models.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, "Upstream service unavailable"
	default:
		return http.StatusInternalServerError, fallback
	}
}

// DomainErrorResponse writes the error envelope for a domain error
func DomainErrorResponse(c echo.Context, err error, fallback string) error {
	status, message := StatusForError(err, fallback)
	return ErrorResponseHandler(c, status, message)
}
