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

const userColumns = `user_id, firebase_uid, name, email, credits, is_active, created_at, updated_at`

// CreateUserWithBonus inserts the user with an empty balance and applies the
// welcome bonus in the same transaction
func (r *CreditsRepo) CreateUserWithBonus(ctx context.Context, user *models.User, bonus *models.LedgerEntry) (*models.LedgerResult, error) {
	now := time.Now().UTC()
	user.ID = uuid.New().String()
	user.Credits = 0
	user.IsActive = true
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (user_id, firebase_uid, name, email, credits,
			is_active, created_at, updated_at
		) VALUES (:user_id, :firebase_uid, :name, :email, :credits,
			:is_active, :created_at, :updated_at)
	`

	var result *models.LedgerResult
	err := nrpkg.WithDatastoreSegment(ctx, "users", "INSERT", func() error {
		return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
			if _, err := tx.NamedExecContext(ctx, query, user); err != nil {
				if database.IsUniqueViolation(err) {
					return models.ErrDuplicateRegistration
				}
				return fmt.Errorf("failed to insert user: %w", err)
			}

			if bonus == nil || bonus.Amount == 0 {
				return nil
			}

			bonus.UserID = user.ID
			applied, err := ApplyLedgerEntry(ctx, tx, bonus, now)
			if err != nil {
				return fmt.Errorf("failed to apply welcome bonus: %w", err)
			}
			result = applied
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if result != nil {
		user.Credits = result.Balance
	}
	return result, nil
}

// GetUserByFirebaseUID retrieves a user by the external identity reference
func (r *CreditsRepo) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	return r.getUserByField(ctx, "firebase_uid", firebaseUID)
}

// GetUserByID retrieves a user by its ledger id
func (r *CreditsRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.getUserByField(ctx, "user_id", userID)
}

// getUserByField is a helper function to get a user by a specific field
func (r *CreditsRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	err := nrpkg.WithDatastoreSegment(ctx, "users", "SELECT", func() error {
		return r.db.GetContext(ctx, &user, query, value)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
