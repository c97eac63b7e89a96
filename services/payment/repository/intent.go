package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/lotaya/internal/pkg/database"
	"github.com/piresc/lotaya/internal/pkg/models"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
	creditsrepo "github.com/piresc/lotaya/services/credits/repository"
)

const intentColumns = `payment_id, user_id, request_id, invoice_no, amount_credits, amount_mmk,
	status, payment_method, created_at, expires_at, updated_at, transaction_id,
	transaction_reference, resp_code, resp_description`

// CreateIntent stores a new pending intent
func (r *PaymentRepo) CreateIntent(ctx context.Context, intent *models.PaymentIntent) error {
	query := `
		INSERT INTO payment_intents (payment_id, user_id, request_id, invoice_no,
			amount_credits, amount_mmk, status, payment_method, created_at, expires_at
		) VALUES (:payment_id, :user_id, :request_id, :invoice_no,
			:amount_credits, :amount_mmk, :status, :payment_method, :created_at, :expires_at)
	`

	err := nrpkg.WithDatastoreSegment(ctx, "payment_intents", "INSERT", func() error {
		_, err := r.db.NamedExecContext(ctx, query, intent)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create payment intent: %w", err)
	}
	return nil
}

// GetByID retrieves an intent by its payment id
func (r *PaymentRepo) GetByID(ctx context.Context, paymentID string) (*models.PaymentIntent, error) {
	return r.getIntentByField(ctx, "payment_id", paymentID)
}

// GetByRequestID retrieves an intent by the gateway request id
func (r *PaymentRepo) GetByRequestID(ctx context.Context, requestID string) (*models.PaymentIntent, error) {
	return r.getIntentByField(ctx, "request_id", requestID)
}

func (r *PaymentRepo) getIntentByField(ctx context.Context, field, value string) (*models.PaymentIntent, error) {
	query := fmt.Sprintf(`SELECT %s FROM payment_intents WHERE %s = $1`, intentColumns, field)

	var intent models.PaymentIntent
	err := nrpkg.WithDatastoreSegment(ctx, "payment_intents", "SELECT", func() error {
		return r.db.GetContext(ctx, &intent, query, value)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment intent: %w", err)
	}

	return &intent, nil
}

// ResolveIntent applies the terminal status to a still pending intent. An
// intent that is already resolved is left untouched and reported with
// Applied false.
func (r *PaymentRepo) ResolveIntent(ctx context.Context, res *models.PaymentResolution, credit *models.LedgerEntry) (*models.CallbackResult, error) {
	query := `
		UPDATE payment_intents
		SET status = $1, transaction_id = $2, transaction_reference = $3,
			resp_code = $4, resp_description = $5, updated_at = $6
		WHERE request_id = $7 AND status = 'pending'
		RETURNING ` + intentColumns

	result := &models.CallbackResult{}
	err := nrpkg.WithDatastoreSegment(ctx, "payment_intents", "UPDATE", func() error {
		return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
			var intent models.PaymentIntent
			err := tx.QueryRowxContext(ctx, query,
				res.Status,
				res.TransactionID,
				res.TransactionReference,
				res.RespCode,
				res.RespDescription,
				res.ResolvedAt,
				res.RequestID,
			).StructScan(&intent)
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to resolve payment intent: %w", err)
			}

			result.Intent = &intent
			result.Applied = true

			if credit == nil || res.Status != models.PaymentStatusCompleted {
				return nil
			}

			entry := *credit
			entry.UserID = intent.UserID
			entry.PaymentID = &intent.ID
			ledger, err := creditsrepo.ApplyLedgerEntry(ctx, tx, &entry, res.ResolvedAt)
			if err != nil {
				return fmt.Errorf("failed to credit payment: %w", err)
			}
			result.Credit = ledger
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if !result.Applied {
		intent, err := r.GetByRequestID(ctx, res.RequestID)
		if err != nil {
			return nil, err
		}
		result.Intent = intent
	}

	return result, nil
}
