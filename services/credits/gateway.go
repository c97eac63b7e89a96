package credits

import (
	"context"

	"github.com/piresc/lotaya/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/lotaya/services/credits CreditsGW

// CreditsGW defines the outbound side effects of ledger mutations
type CreditsGW interface {
	// Redis mirror
	MirrorUser(ctx context.Context, firebaseUID string, mirror *models.UserMirror) error

	// NATS Gateway
	PublishLedgerEvent(ctx context.Context, event *models.LedgerEvent) error
}
