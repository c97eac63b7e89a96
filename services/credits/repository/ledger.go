package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/lotaya/internal/pkg/database"
	"github.com/piresc/lotaya/internal/pkg/models"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
)

const (
	debitQuery = `
		UPDATE users
		SET credits = credits - $1, updated_at = $2
		WHERE user_id = $3 AND is_active AND credits >= $1
		RETURNING credits
	`

	creditQuery = `
		UPDATE users
		SET credits = credits + $1, updated_at = $2
		WHERE user_id = $3 AND is_active
		RETURNING credits
	`

	insertTransactionQuery = `
		INSERT INTO transactions (transaction_id, user_id, type, amount,
			service, description, status, payment_id, created_at
		) VALUES (:transaction_id, :user_id, :type, :amount,
			:service, :description, :status, :payment_id, :created_at)
	`
)

// ApplyLedgerEntry moves the balance and appends the matching transaction
// using q, which may be a pool or an open transaction. Debits only succeed
// when the balance covers them, so concurrent mutations of one user are
// serialized by the row update itself.
func ApplyLedgerEntry(ctx context.Context, q sqlx.ExtContext, entry *models.LedgerEntry, now time.Time) (*models.LedgerResult, error) {
	if entry.Amount <= 0 {
		return nil, models.ErrInvalidAmount
	}

	var query string
	switch entry.Type {
	case models.TransactionDebit:
		query = debitQuery
	case models.TransactionCredit:
		query = creditQuery
	default:
		return nil, fmt.Errorf("unknown transaction type %q", entry.Type)
	}

	var balance int
	err := q.QueryRowxContext(ctx, query, entry.Amount, now, entry.UserID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, classifyRejectedEntry(ctx, q, entry)
		}
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	txn := &models.Transaction{
		ID:          uuid.New().String(),
		UserID:      entry.UserID,
		Type:        entry.Type,
		Amount:      entry.Amount,
		Service:     entry.Service,
		Description: entry.Description,
		Status:      models.TransactionStatusCompleted,
		PaymentID:   entry.PaymentID,
		CreatedAt:   now,
	}
	if _, err := sqlx.NamedExecContext(ctx, q, insertTransactionQuery, txn); err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &models.LedgerResult{
		Transaction: txn,
		Balance:     balance,
	}, nil
}

// classifyRejectedEntry explains why the balance update matched no row
func classifyRejectedEntry(ctx context.Context, q sqlx.ExtContext, entry *models.LedgerEntry) error {
	var active bool
	err := q.QueryRowxContext(ctx, `SELECT is_active FROM users WHERE user_id = $1`, entry.UserID).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !active {
		return models.ErrUserNotFound
	}
	if entry.Type == models.TransactionDebit {
		return models.ErrInsufficientCredits
	}
	return fmt.Errorf("balance update rejected for user %s", entry.UserID)
}

// ApplyEntry applies a single ledger entry in its own transaction
func (r *CreditsRepo) ApplyEntry(ctx context.Context, entry *models.LedgerEntry) (*models.LedgerResult, error) {
	var result *models.LedgerResult
	err := nrpkg.WithDatastoreSegment(ctx, "users", "UPDATE", func() error {
		return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
			var err error
			result, err = ApplyLedgerEntry(ctx, tx, entry, time.Now().UTC())
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListTransactions returns a window of the user's transactions, newest first
func (r *CreditsRepo) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]*models.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, type, amount, service, description,
			status, payment_id, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $2 OFFSET $3
	`

	transactions := []*models.Transaction{}
	err := nrpkg.WithDatastoreSegment(ctx, "transactions", "SELECT", func() error {
		return r.db.SelectContext(ctx, &transactions, query, userID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}
