package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/lotaya/internal/pkg/constants"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/models"
)

// HandleCallback verifies a gateway callback and resolves its intent at most
// once. Callbacks for intents that are no longer pending succeed without
// side effects.
func (uc *PaymentUC) HandleCallback(ctx context.Context, cb *models.PaymentCallback) (*models.CallbackResult, error) {
	if !uc.paymentGW.VerifyCallback(cb) {
		logger.ErrorCtx(ctx, "Invalid payment callback signature",
			logger.String("request_id", cb.RequestID),
			logger.String("invoice_no", cb.InvoiceNo))
		return nil, models.ErrInvalidSignature
	}

	intent, err := uc.paymentRepo.GetByRequestID(ctx, cb.RequestID)
	if err != nil {
		return nil, err
	}

	if intent.Status != models.PaymentStatusPending {
		logger.InfoCtx(ctx, "Ignoring callback for resolved payment",
			logger.String("payment_id", intent.ID),
			logger.String("status", string(intent.Status)))
		return &models.CallbackResult{Intent: intent}, nil
	}

	now := uc.now()
	status := models.PaymentStatusFailed
	var credit *models.LedgerEntry

	if cb.RespCode == constants.PGWSuccessCode {
		switch {
		case intent.IsExpired(now):
			logger.ErrorCtx(ctx, "Success callback for expired payment",
				logger.String("payment_id", intent.ID),
				logger.String("transaction_id", cb.TransactionID))
		case !uc.settlementMatches(intent, cb):
			logger.ErrorCtx(ctx, "Callback settlement does not match payment",
				logger.String("payment_id", intent.ID),
				logger.String("callback_amount", cb.Amount.String()),
				logger.String("callback_currency", cb.Currency),
				logger.Int64("amount_mmk", intent.AmountMMK))
		default:
			status = models.PaymentStatusCompleted
			credit = &models.LedgerEntry{
				UserID:      intent.UserID,
				Type:        models.TransactionCredit,
				Amount:      intent.AmountCredits,
				Service:     models.ServicePayment,
				Description: fmt.Sprintf("Credit top-up via %s", cb.PaymentMethod),
			}
		}
	}

	result, err := uc.paymentRepo.ResolveIntent(ctx, &models.PaymentResolution{
		RequestID:            cb.RequestID,
		Status:               status,
		TransactionID:        cb.TransactionID,
		TransactionReference: cb.TransactionReferenceNumber,
		RespCode:             cb.RespCode,
		RespDescription:      cb.RespDescription,
		ResolvedAt:           now.UTC(),
	}, credit)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payment: %w", err)
	}

	// lost a race with a concurrent callback
	if !result.Applied {
		return result, nil
	}

	if result.Credit != nil {
		uc.creditsUC.NotifyMutation(ctx, result.Credit)
		logger.InfoCtx(ctx, "Payment successful",
			logger.String("payment_id", result.Intent.ID),
			logger.String("transaction_id", cb.TransactionID))
	} else {
		logger.WarnCtx(ctx, "Payment failed",
			logger.String("payment_id", result.Intent.ID),
			logger.String("resp_code", cb.RespCode),
			logger.String("resp_description", cb.RespDescription))
	}

	uc.publish(ctx, result.Intent, cb.RespCode)
	return result, nil
}

// settlementMatches reports whether the callback settles the intent's amount
func (uc *PaymentUC) settlementMatches(intent *models.PaymentIntent, cb *models.PaymentCallback) bool {
	expected := models.NewGatewayAmount(intent.AmountMMK)
	return cb.Amount.Decimal.Equal(expected.Decimal) && strings.EqualFold(cb.Currency, uc.currency())
}

func (uc *PaymentUC) publish(ctx context.Context, intent *models.PaymentIntent, respCode string) {
	err := uc.paymentGW.PublishPaymentEvent(ctx, &models.PaymentEvent{
		PaymentID:     intent.ID,
		UserID:        intent.UserID,
		RequestID:     intent.RequestID,
		Status:        intent.Status,
		AmountCredits: intent.AmountCredits,
		AmountMMK:     intent.AmountMMK,
		RespCode:      respCode,
		OccurredAt:    uc.now().UTC(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment event",
			logger.String("payment_id", intent.ID),
			logger.ErrorField(err))
	}
}
