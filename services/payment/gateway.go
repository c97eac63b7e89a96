package payment

import (
	"context"
	"time"

	"github.com/piresc/lotaya/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/lotaya/services/payment PaymentGW

// PaymentGW defines the payment gateway contract and outbound events
type PaymentGW interface {
	// PGW
	PaymentURL() string
	BuildPaymentForm(intent *models.PaymentIntent, user *models.User, signedAt time.Time) models.GatewayForm
	VerifyCallback(cb *models.PaymentCallback) bool

	// NATS Gateway
	PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error
}
