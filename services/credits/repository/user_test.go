package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/lotaya/internal/pkg/models"
)

func welcomeBonus() *models.LedgerEntry {
	return &models.LedgerEntry{
		Type:        models.TransactionCredit,
		Amount:      100,
		Service:     models.ServiceRegistration,
		Description: "Welcome bonus credits",
	}
}

func TestCreateUserWithBonus(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, result *models.LedgerResult, err error)
	}{
		{
			name: "Success - Balance equals bonus",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO users").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("^UPDATE users SET credits = credits \\+ ").
					WithArgs(100, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(100))
				mock.ExpectExec("^INSERT INTO transactions").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, user *models.User, result *models.LedgerResult, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, 100, user.Credits)
				assert.True(t, user.IsActive)
				require.NotNil(t, result)
				assert.Equal(t, user.ID, result.Transaction.UserID)
				assert.Equal(t, models.ServiceRegistration, result.Transaction.Service)
				assert.Equal(t, "Welcome bonus credits", result.Transaction.Description)
			},
		},
		{
			name: "Error - Duplicate email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, user *models.User, result *models.LedgerResult, err error) {
				assert.ErrorIs(t, err, models.ErrDuplicateRegistration)
				assert.Nil(t, result)
			},
		},
		{
			name: "Error - Bonus fails rolls back the user",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO users").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("^UPDATE users").
					WillReturnError(errors.New("deadlock detected"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, user *models.User, result *models.LedgerResult, err error) {
				assert.ErrorContains(t, err, "failed to apply welcome bonus")
				assert.Equal(t, 0, user.Credits)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupCreditsRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user := &models.User{Name: "Aung Aung", Email: "aung@example.com", FirebaseUID: "fb-1"}
			result, err := repo.CreateUserWithBonus(context.Background(), user, welcomeBonus())

			tc.assertFunc(t, user, result, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByFirebaseUID(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				now := time.Now()
				rows := sqlmock.NewRows([]string{"user_id", "firebase_uid", "name", "email", "credits", "is_active", "created_at", "updated_at"}).
					AddRow("user-1", "fb-1", "Aung Aung", "aung@example.com", 70, true, now, now)
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE firebase_uid").
					WithArgs("fb-1").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, "user-1", user.ID)
				assert.Equal(t, "fb-1", user.FirebaseUID)
				assert.Equal(t, 70, user.Credits)
				assert.True(t, user.IsActive)
			},
		},
		{
			name: "Error - Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE firebase_uid").
					WithArgs("fb-1").
					WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.ErrorIs(t, err, models.ErrUserNotFound)
				assert.Nil(t, user)
			},
		},
		{
			name: "Error - Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE firebase_uid").
					WithArgs("fb-1").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.ErrorContains(t, err, "failed to get user")
				assert.NotErrorIs(t, err, models.ErrUserNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupCreditsRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByFirebaseUID(context.Background(), "fb-1")

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByID(t *testing.T) {
	repo, mock, cleanup := setupCreditsRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"user_id", "firebase_uid", "name", "email", "credits", "is_active", "created_at", "updated_at"}).
		AddRow("user-1", "fb-1", "Aung Aung", "aung@example.com", 100, true, now, now)
	mock.ExpectQuery("^SELECT (.+) FROM users WHERE user_id").
		WithArgs("user-1").
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "aung@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
