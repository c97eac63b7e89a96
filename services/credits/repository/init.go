package repository

import (
	"github.com/jmoiron/sqlx"
)

// CreditsRepo implements the credit ledger on PostgreSQL
type CreditsRepo struct {
	db *sqlx.DB
}

// NewCreditsRepo creates a new credits repository
func NewCreditsRepo(db *sqlx.DB) *CreditsRepo {
	return &CreditsRepo{
		db: db,
	}
}
