package credits

import (
	"context"

	"github.com/piresc/lotaya/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/lotaya/services/credits CreditsRepo

// CreditsRepo defines the persistence operations of the credit ledger
type CreditsRepo interface {
	CreateUserWithBonus(ctx context.Context, user *models.User, bonus *models.LedgerEntry) (*models.LedgerResult, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	ApplyEntry(ctx context.Context, entry *models.LedgerEntry) (*models.LedgerResult, error)
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]*models.Transaction, error)
}
