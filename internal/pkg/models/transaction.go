package models

import (
	"time"
)

// TransactionType is the direction of a ledger entry
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// TransactionStatusCompleted is the only status a ledger entry is written with
const TransactionStatusCompleted = "completed"

// Ledger service tags
const (
	ServiceRegistration = "registration"
	ServicePayment      = "payment"
)

// Transaction is an immutable ledger entry
type Transaction struct {
	ID          string          `json:"transaction_id" db:"transaction_id"`
	UserID      string          `json:"user_id" db:"user_id"`
	Type        TransactionType `json:"type" db:"type"`
	Amount      int             `json:"amount" db:"amount"`
	Service     string          `json:"service" db:"service"`
	Description string          `json:"description" db:"description"`
	Status      string          `json:"status" db:"status"`
	PaymentID   *string         `json:"payment_id,omitempty" db:"payment_id"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// SignedAmount returns the amount with the sign of its direction
func (t *Transaction) SignedAmount() int {
	if t.Type == TransactionDebit {
		return -t.Amount
	}
	return t.Amount
}

// DeductRequest is the payload of POST /credits/deduct
type DeductRequest struct {
	Amount      int    `json:"amount"`
	Service     string `json:"service"`
	Description string `json:"description"`
}

// DeductResponse is returned after a successful deduction
type DeductResponse struct {
	RemainingCredits int    `json:"remaining_credits"`
	TransactionID    string `json:"transaction_id"`
}

// CreditRequest describes a balance increment
type CreditRequest struct {
	UserID      string
	Amount      int
	Service     string
	Description string
	PaymentID   *string
}

// LedgerEntry is a single balance mutation applied through the ledger primitive
type LedgerEntry struct {
	UserID      string
	Type        TransactionType
	Amount      int
	Service     string
	Description string
	PaymentID   *string
}

// LedgerResult is the outcome of a committed balance mutation
type LedgerResult struct {
	Transaction *Transaction
	Balance     int
}

// TransactionPage is a window of a user's history, newest first
type TransactionPage struct {
	Transactions []*Transaction `json:"transactions"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

// LedgerEvent is published after a committed balance mutation
type LedgerEvent struct {
	UserID        string          `json:"user_id"`
	TransactionID string          `json:"transaction_id"`
	Type          TransactionType `json:"type"`
	Amount        int             `json:"amount"`
	Balance       int             `json:"balance"`
	Service       string          `json:"service"`
	PaymentID     *string         `json:"payment_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
