package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/models"
)

// Initiate creates a pending intent and the signed form that sends the user
// to the gateway
func (uc *PaymentUC) Initiate(ctx context.Context, firebaseUID string, req *models.InitiateRequest) (*models.InitiateResponse, error) {
	if req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}
	if limit := uc.cfg.PGW.MaxCredits; limit > 0 && req.Amount > limit {
		return nil, fmt.Errorf("%w: at most %d credits per top-up", models.ErrAmountTooLarge, limit)
	}

	user, err := uc.creditsUC.ResolveUser(ctx, firebaseUID)
	if err != nil {
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = defaultPaymentMethod
	}

	now := uc.now()
	unix := strconv.FormatInt(now.Unix(), 10)
	suffix := uc.suffix()

	intent := &models.PaymentIntent{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		RequestID:     "REQ" + unix + suffix,
		InvoiceNo:     "INV" + unix + suffix,
		AmountCredits: req.Amount,
		AmountMMK:     int64(req.Amount) * creditRate,
		Status:        models.PaymentStatusPending,
		PaymentMethod: method,
		CreatedAt:     now.UTC(),
		ExpiresAt:     now.Add(uc.expiry()).UTC(),
	}

	form := uc.paymentGW.BuildPaymentForm(intent, user, now)

	if err := uc.paymentRepo.CreateIntent(ctx, intent); err != nil {
		return nil, fmt.Errorf("failed to initiate payment: %w", err)
	}

	logger.InfoCtx(ctx, "Payment initiated",
		logger.String("payment_id", intent.ID),
		logger.String("request_id", intent.RequestID),
		logger.Int("amount_credits", intent.AmountCredits),
		logger.Int64("amount_mmk", intent.AmountMMK))

	return &models.InitiateResponse{
		PaymentURL: uc.paymentGW.PaymentURL(),
		FormData:   form,
		PaymentID:  intent.ID,
	}, nil
}

// GetStatus returns the intent when it belongs to the caller
func (uc *PaymentUC) GetStatus(ctx context.Context, paymentID, firebaseUID string) (*models.PaymentStatusView, error) {
	if _, err := uuid.Parse(paymentID); err != nil {
		return nil, models.ErrPaymentNotFound
	}

	user, err := uc.creditsUC.ResolveUser(ctx, firebaseUID)
	if err != nil {
		return nil, err
	}

	intent, err := uc.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if intent.UserID != user.ID {
		return nil, models.ErrPaymentNotFound
	}

	now := uc.now()
	return &models.PaymentStatusView{
		Payment:         intent,
		EffectiveStatus: intent.EffectiveStatus(now),
		Expired:         intent.IsExpired(now),
	}, nil
}
