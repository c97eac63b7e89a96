// Package identity verifies end-user bearer tokens and resolves them to the
// external user id used to look up ledger accounts.
package identity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/models"
)

const (
	ModeFirebase = "firebase"
	ModeHMAC     = "hmac"
)

// Verifier checks a bearer token and returns the external user id it carries
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// NewVerifier builds the verifier selected by the identity configuration
func NewVerifier(cfg models.IdentityConfig, l *logger.ZapLogger) (Verifier, error) {
	switch strings.ToLower(cfg.Mode) {
	case ModeFirebase, "":
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("firebase identity requires a project id")
		}
		timeout := time.Duration(cfg.HTTPTimeout) * time.Second
		return NewFirebaseVerifier(cfg.ProjectID, cfg.CertsURL, timeout, l), nil
	case ModeHMAC:
		if cfg.HMACSecret == "" {
			return nil, fmt.Errorf("hmac identity requires a secret")
		}
		return NewHMACVerifier(cfg.HMACSecret), nil
	default:
		return nil, fmt.Errorf("unknown identity mode %q", cfg.Mode)
	}
}

// ExtractBearer returns the token from an Authorization header value
func ExtractBearer(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", models.ErrUnauthorized
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", models.ErrUnauthorized
	}
	return token, nil
}
