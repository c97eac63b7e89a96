package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/models"
)

// Deduct debits the user's balance for a consumed service
func (uc *CreditsUC) Deduct(ctx context.Context, userID string, amount int, service, description string) (*models.LedgerResult, error) {
	if amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	result, err := uc.creditsRepo.ApplyEntry(ctx, &models.LedgerEntry{
		UserID:      userID,
		Type:        models.TransactionDebit,
		Amount:      amount,
		Service:     service,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deduct credits: %w", err)
	}

	uc.NotifyMutation(ctx, result)
	return result, nil
}

// Credit increments the user's balance
func (uc *CreditsUC) Credit(ctx context.Context, req *models.CreditRequest) (*models.LedgerResult, error) {
	if req.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	result, err := uc.creditsRepo.ApplyEntry(ctx, &models.LedgerEntry{
		UserID:      req.UserID,
		Type:        models.TransactionCredit,
		Amount:      req.Amount,
		Service:     req.Service,
		Description: req.Description,
		PaymentID:   req.PaymentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to credit user: %w", err)
	}

	uc.NotifyMutation(ctx, result)
	return result, nil
}

// ListTransactions returns a page of the user's history, newest first
func (uc *CreditsUC) ListTransactions(ctx context.Context, userID string, limit, offset int) (*models.TransactionPage, error) {
	limit, offset = uc.pageWindow(limit, offset)

	transactions, err := uc.creditsRepo.ListTransactions(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &models.TransactionPage{
		Transactions: transactions,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// NotifyMutation refreshes the profile mirror and publishes the ledger event
// of a committed mutation. Failures are logged and never returned.
func (uc *CreditsUC) NotifyMutation(ctx context.Context, result *models.LedgerResult) {
	if result == nil || result.Transaction == nil {
		return
	}

	user, err := uc.creditsRepo.GetUserByID(ctx, result.Transaction.UserID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load user for mirror",
			logger.String("user_id", result.Transaction.UserID),
			logger.ErrorField(err))
	} else {
		uc.mirror(ctx, user)
	}

	uc.publish(ctx, result)
}

func (uc *CreditsUC) publish(ctx context.Context, result *models.LedgerResult) {
	txn := result.Transaction
	err := uc.creditsGW.PublishLedgerEvent(ctx, &models.LedgerEvent{
		UserID:        txn.UserID,
		TransactionID: txn.ID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Balance:       result.Balance,
		Service:       txn.Service,
		PaymentID:     txn.PaymentID,
		OccurredAt:    uc.now().UTC(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish ledger event",
			logger.String("transaction_id", txn.ID),
			logger.ErrorField(err))
	}
}
