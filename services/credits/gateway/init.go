package gateway

import (
	"context"
	"time"

	"github.com/piresc/lotaya/internal/pkg/database"
	"github.com/piresc/lotaya/internal/pkg/models"
	natspkg "github.com/piresc/lotaya/internal/pkg/nats"
	"github.com/piresc/lotaya/services/credits"
)

// CreditsGW handles credits gateway operations. Either side may be nil when
// the backing service is disabled.
type CreditsGW struct {
	redisGateway *RedisGateway
	natsGateway  *NATSGateway
}

// NewCreditsGW creates a new gateway instance with optional Redis and NATS clients
func NewCreditsGW(redisClient *database.RedisClient, natsClient *natspkg.Client, mirrorTTL time.Duration) credits.CreditsGW {
	gw := &CreditsGW{}
	if redisClient != nil {
		gw.redisGateway = NewRedisGateway(redisClient, mirrorTTL)
	}
	if natsClient != nil {
		gw.natsGateway = NewNATSGateway(natsClient)
	}
	return gw
}

// MirrorUser writes the user state to the profile mirror
func (g *CreditsGW) MirrorUser(ctx context.Context, firebaseUID string, mirror *models.UserMirror) error {
	if g.redisGateway == nil {
		return nil
	}
	return g.redisGateway.MirrorUser(ctx, firebaseUID, mirror)
}

// PublishLedgerEvent publishes a committed ledger mutation
func (g *CreditsGW) PublishLedgerEvent(ctx context.Context, event *models.LedgerEvent) error {
	if g.natsGateway == nil {
		return nil
	}
	return g.natsGateway.PublishLedgerEvent(ctx, event)
}
