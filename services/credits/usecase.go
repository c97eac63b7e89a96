package credits

import (
	"context"

	"github.com/piresc/lotaya/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/lotaya/services/credits CreditsUC

// CreditsUC represents the credit ledger usecase interface
type CreditsUC interface {
	// users
	RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	GetProfile(ctx context.Context, firebaseUID string) (*models.User, error)
	ResolveUser(ctx context.Context, firebaseUID string) (*models.User, error)

	// ledger
	Deduct(ctx context.Context, userID string, amount int, service, description string) (*models.LedgerResult, error)
	Credit(ctx context.Context, req *models.CreditRequest) (*models.LedgerResult, error)
	ListTransactions(ctx context.Context, userID string, limit, offset int) (*models.TransactionPage, error)

	// NotifyMutation mirrors and publishes a mutation committed elsewhere
	NotifyMutation(ctx context.Context, result *models.LedgerResult)
}
