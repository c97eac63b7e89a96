package models

import "errors"

var (
	ErrUnauthorized          = errors.New("invalid or missing identity token")
	ErrUserNotFound          = errors.New("user not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInsufficientCredits   = errors.New("insufficient credits")
	ErrInvalidSignature      = errors.New("invalid signature")
	ErrDuplicateRegistration = errors.New("email already registered")
	ErrUpstreamUnavailable   = errors.New("upstream service unavailable")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrAmountTooLarge        = errors.New("amount exceeds the top-up limit")
)
