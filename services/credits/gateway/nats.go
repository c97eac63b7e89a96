package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/lotaya/internal/pkg/constants"
	"github.com/piresc/lotaya/internal/pkg/models"
	natspkg "github.com/piresc/lotaya/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the credits service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishLedgerEvent publishes a ledger event on the subject of its direction
func (g *NATSGateway) PublishLedgerEvent(ctx context.Context, event *models.LedgerEvent) error {
	subject, err := ledgerSubject(event.Type)
	if err != nil {
		return err
	}
	return g.client.PublishJSON(subject, event)
}

func ledgerSubject(t models.TransactionType) (string, error) {
	switch t {
	case models.TransactionDebit:
		return constants.SubjectCreditsDebited, nil
	case models.TransactionCredit:
		return constants.SubjectCreditsCredited, nil
	default:
		return "", fmt.Errorf("no subject for transaction type %q", t)
	}
}
