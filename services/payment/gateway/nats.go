package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/lotaya/internal/pkg/constants"
	"github.com/piresc/lotaya/internal/pkg/models"
	natspkg "github.com/piresc/lotaya/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the payment service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishPaymentEvent publishes a resolved intent on the subject of its status
func (g *NATSGateway) PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	var subject string
	switch event.Status {
	case models.PaymentStatusCompleted:
		subject = constants.SubjectPaymentCompleted
	case models.PaymentStatusFailed:
		subject = constants.SubjectPaymentFailed
	default:
		return fmt.Errorf("no subject for payment status %q", event.Status)
	}
	return g.client.PublishJSON(subject, event)
}
