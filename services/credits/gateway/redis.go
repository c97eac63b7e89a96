package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/lotaya/internal/pkg/constants"
	"github.com/piresc/lotaya/internal/pkg/database"
	"github.com/piresc/lotaya/internal/pkg/models"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
)

// RedisGateway keeps a copy of user state keyed by the external identity
type RedisGateway struct {
	client *database.RedisClient
	ttl    time.Duration
}

// NewRedisGateway creates a new Redis gateway
func NewRedisGateway(client *database.RedisClient, ttl time.Duration) *RedisGateway {
	return &RedisGateway{
		client: client,
		ttl:    ttl,
	}
}

// MirrorUser overwrites the mirrored profile hash of the user
func (g *RedisGateway) MirrorUser(ctx context.Context, firebaseUID string, mirror *models.UserMirror) error {
	if firebaseUID == "" {
		return fmt.Errorf("missing identity reference for user %s", mirror.UserID)
	}

	key := fmt.Sprintf(constants.KeyUserProfile, firebaseUID)
	values := map[string]interface{}{
		constants.FieldUserID:    mirror.UserID,
		constants.FieldName:      mirror.Name,
		constants.FieldEmail:     mirror.Email,
		constants.FieldCredits:   mirror.Credits,
		constants.FieldUpdatedAt: mirror.UpdatedAt.UTC().Format(time.RFC3339),
	}

	return nrpkg.WithSegment(ctx, "Redis.MirrorUser", func() error {
		if err := g.client.HSet(ctx, key, values); err != nil {
			return fmt.Errorf("failed to mirror user: %w", err)
		}
		if g.ttl > 0 {
			if err := g.client.Expire(ctx, key, g.ttl); err != nil {
				return fmt.Errorf("failed to set mirror expiry: %w", err)
			}
		}
		return nil
	})
}
