package gateway

import (
	"context"

	"github.com/piresc/lotaya/internal/pkg/models"
	natspkg "github.com/piresc/lotaya/internal/pkg/nats"
	"github.com/piresc/lotaya/services/payment"
)

// PaymentGW handles payment gateway operations
type PaymentGW struct {
	*PGWGateway
	natsGateway *NATSGateway
}

// NewPaymentGW creates a new gateway instance. natsClient may be nil when
// events are disabled.
func NewPaymentGW(cfg models.PGWConfig, natsClient *natspkg.Client) payment.PaymentGW {
	gw := &PaymentGW{
		PGWGateway: NewPGWGateway(cfg),
	}
	if natsClient != nil {
		gw.natsGateway = NewNATSGateway(natsClient)
	}
	return gw
}

// PublishPaymentEvent publishes a resolved intent
func (g *PaymentGW) PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	if g.natsGateway == nil {
		return nil
	}
	return g.natsGateway.PublishPaymentEvent(ctx, event)
}
