package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/lotaya/internal/pkg/circuitbreaker"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/models"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
	"github.com/piresc/lotaya/internal/pkg/retry"
)

const (
	// DefaultCertsURL serves the x509 certificates Firebase signs ID tokens with
	DefaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

	issuerPrefix       = "https://securetoken.google.com/"
	defaultCertsMaxAge = time.Hour
)

var errCertsStatus = errors.New("unexpected certificate endpoint status")

// FirebaseClaims are the Firebase ID token claims the service reads
type FirebaseClaims struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	AuthTime int64  `json:"auth_time,omitempty"`
	jwt.RegisteredClaims
}

// FirebaseVerifier validates RS256 Firebase ID tokens against Google's
// published certificates
type FirebaseVerifier struct {
	projectID string
	certsURL  string
	client    *resty.Client
	retrier   *retry.Retrier
	breaker   *circuitbreaker.CircuitBreaker
	logger    *logger.ZapLogger
	now       func() time.Time

	mu        sync.RWMutex
	keys      map[string]interface{}
	expiresAt time.Time
}

// NewFirebaseVerifier creates a verifier for the given Firebase project
func NewFirebaseVerifier(projectID, certsURL string, timeout time.Duration, l *logger.ZapLogger) *FirebaseVerifier {
	if certsURL == "" {
		certsURL = DefaultCertsURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if l == nil {
		l = logger.NewNopLogger()
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 2
	retryCfg.RetryableFunc = retry.NetworkRetryableFunc()

	return &FirebaseVerifier{
		projectID: projectID,
		certsURL:  certsURL,
		client:    resty.New().SetTimeout(timeout),
		retrier:   retry.New(retryCfg, l),
		breaker:   circuitbreaker.New(circuitbreaker.DefaultConfig("firebase-certs"), l),
		logger:    l,
		now:       time.Now,
	}
}

// VerifyToken validates signature, issuer, audience, subject and expiry
func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	claims := &FirebaseClaims{}
	var keyErr error

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid header")
		}
		key, err := v.publicKey(ctx, kid)
		if err != nil {
			keyErr = err
			return nil, err
		}
		return key, nil
	})
	if keyErr != nil && errors.Is(keyErr, models.ErrUpstreamUnavailable) {
		return "", keyErr
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return "", models.ErrUnauthorized
	}

	if !claims.VerifyAudience(v.projectID, true) {
		return "", fmt.Errorf("%w: audience mismatch", models.ErrUnauthorized)
	}
	if !claims.VerifyIssuer(issuerPrefix+v.projectID, true) {
		return "", fmt.Errorf("%w: issuer mismatch", models.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", models.ErrUnauthorized)
	}
	if claims.AuthTime > v.now().Unix() {
		return "", fmt.Errorf("%w: auth_time in the future", models.ErrUnauthorized)
	}

	return claims.Subject, nil
}

// publicKey returns the key for kid, refreshing the certificate set when the
// cache has expired or does not know the kid
func (v *FirebaseVerifier) publicKey(ctx context.Context, kid string) (interface{}, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	fresh := v.now().Before(v.expiresAt)
	v.mu.RUnlock()
	if ok && fresh {
		return key, nil
	}

	if err := v.refresh(ctx); err != nil {
		if ok {
			v.logger.Warn("Using stale identity certificate",
				logger.String("kid", kid),
				logger.ErrorField(err))
			return key, nil
		}
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()
	key, ok = v.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}
	return key, nil
}

// CheckHealth reports whether signing certificates are available, fetching
// them when the cache is empty or stale
func (v *FirebaseVerifier) CheckHealth(ctx context.Context) error {
	if v.breaker.State() == circuitbreaker.StateOpen {
		return fmt.Errorf("%w: certificate fetch circuit open", models.ErrUpstreamUnavailable)
	}

	v.mu.RLock()
	fresh := len(v.keys) > 0 && v.now().Before(v.expiresAt)
	v.mu.RUnlock()
	if fresh {
		return nil
	}
	return v.refresh(ctx)
}

func (v *FirebaseVerifier) refresh(ctx context.Context) error {
	var (
		body   []byte
		maxAge time.Duration
	)

	fetch := func(ctx context.Context) error {
		resp, err := v.client.R().SetContext(ctx).Get(v.certsURL)
		if err != nil {
			return err
		}
		if resp.StatusCode() != http.StatusOK {
			return fmt.Errorf("%w: %d %s", errCertsStatus, resp.StatusCode(), strings.ToLower(http.StatusText(resp.StatusCode())))
		}
		body = resp.Body()
		maxAge = parseMaxAge(resp.Header().Get("Cache-Control"))
		return nil
	}

	err := nrpkg.WithExternalSegment(ctx, "resty", http.MethodGet, v.certsURL, func() error {
		return v.breaker.Execute(ctx, func(ctx context.Context) error {
			return v.retrier.Execute(ctx, fetch)
		})
	})
	if err != nil {
		v.logger.Error("Failed to fetch identity certificates",
			logger.String("url", v.certsURL),
			logger.ErrorField(err))
		return fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}

	var certs map[string]string
	if err := json.Unmarshal(body, &certs); err != nil {
		return fmt.Errorf("%w: decode certificates: %v", models.ErrUpstreamUnavailable, err)
	}

	keys := make(map[string]interface{}, len(certs))
	for kid, pem := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			v.logger.Warn("Skipping unparsable identity certificate",
				logger.String("kid", kid),
				logger.ErrorField(err))
			continue
		}
		keys[kid] = key
	}

	v.mu.Lock()
	v.keys = keys
	v.expiresAt = v.now().Add(maxAge)
	v.mu.Unlock()

	v.logger.Debug("Refreshed identity certificates",
		logger.Int("keys", len(keys)),
		logger.Duration("max_age", maxAge))
	return nil
}

func parseMaxAge(cacheControl string) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(directive)
		if !strings.HasPrefix(directive, "max-age=") {
			continue
		}
		seconds, err := strconv.Atoi(strings.TrimPrefix(directive, "max-age="))
		if err != nil || seconds <= 0 {
			break
		}
		return time.Duration(seconds) * time.Second
	}
	return defaultCertsMaxAge
}
