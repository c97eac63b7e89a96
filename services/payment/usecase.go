package payment

import (
	"context"

	"github.com/piresc/lotaya/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lotaya/services/payment PaymentUC

// PaymentUC represents the top-up payment usecase interface
type PaymentUC interface {
	Initiate(ctx context.Context, firebaseUID string, req *models.InitiateRequest) (*models.InitiateResponse, error)
	GetStatus(ctx context.Context, paymentID, firebaseUID string) (*models.PaymentStatusView, error)

	// gateway callback
	HandleCallback(ctx context.Context, cb *models.PaymentCallback) (*models.CallbackResult, error)
}
