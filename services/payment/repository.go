package payment

import (
	"context"

	"github.com/piresc/lotaya/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/lotaya/services/payment PaymentRepo

// PaymentRepo defines the persistence operations of payment intents
type PaymentRepo interface {
	CreateIntent(ctx context.Context, intent *models.PaymentIntent) error
	GetByID(ctx context.Context, paymentID string) (*models.PaymentIntent, error)
	GetByRequestID(ctx context.Context, requestID string) (*models.PaymentIntent, error)

	// ResolveIntent moves a pending intent to its terminal status and, when
	// credit is set, applies it in the same transaction
	ResolveIntent(ctx context.Context, res *models.PaymentResolution, credit *models.LedgerEntry) (*models.CallbackResult, error)
}
