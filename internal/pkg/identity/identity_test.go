package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	jwtpkg "github.com/piresc/lotaya/internal/pkg/jwt"
	"github.com/piresc/lotaya/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProject = "lotaya-test"

func newCertPEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "securetoken.system.gserviceaccount.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

type certServer struct {
	*httptest.Server
	hits int32
}

func newCertServer(t *testing.T, certs map[string]string) *certServer {
	cs := &certServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&cs.hits, 1)
		w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
		_ = json.NewEncoder(w).Encode(certs)
	}))
	t.Cleanup(cs.Close)
	return cs
}

func signFirebaseToken(t *testing.T, key *rsa.PrivateKey, kid string, mutate func(*FirebaseClaims)) string {
	t.Helper()
	now := time.Now()
	claims := &FirebaseClaims{
		Email:    "aung@example.com",
		AuthTime: now.Add(-time.Minute).Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "firebase-uid-1",
			Issuer:    issuerPrefix + testProject,
			Audience:  jwt.ClaimStrings{testProject},
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	if mutate != nil {
		mutate(claims)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestFirebaseVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := newCertServer(t, map[string]string{"kid-1": newCertPEM(t, key)})
	v := NewFirebaseVerifier(testProject, srv.URL, time.Second, nil)

	tests := []struct {
		name    string
		token   string
		wantUID string
		wantErr error
	}{
		{
			name:    "Valid token",
			token:   signFirebaseToken(t, key, "kid-1", nil),
			wantUID: "firebase-uid-1",
		},
		{
			name: "Wrong audience",
			token: signFirebaseToken(t, key, "kid-1", func(c *FirebaseClaims) {
				c.Audience = jwt.ClaimStrings{"other-project"}
			}),
			wantErr: models.ErrUnauthorized,
		},
		{
			name: "Wrong issuer",
			token: signFirebaseToken(t, key, "kid-1", func(c *FirebaseClaims) {
				c.Issuer = "https://evil.example.com/" + testProject
			}),
			wantErr: models.ErrUnauthorized,
		},
		{
			name: "Empty subject",
			token: signFirebaseToken(t, key, "kid-1", func(c *FirebaseClaims) {
				c.Subject = ""
			}),
			wantErr: models.ErrUnauthorized,
		},
		{
			name: "Expired",
			token: signFirebaseToken(t, key, "kid-1", func(c *FirebaseClaims) {
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
			}),
			wantErr: models.ErrUnauthorized,
		},
		{
			name:    "Signed by unknown key",
			token:   signFirebaseToken(t, other, "kid-1", nil),
			wantErr: models.ErrUnauthorized,
		},
		{
			name:    "Unknown kid",
			token:   signFirebaseToken(t, key, "kid-9", nil),
			wantErr: models.ErrUnauthorized,
		},
		{
			name:    "Garbage",
			token:   "abc.def.ghi",
			wantErr: models.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, err := v.VerifyToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, uid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, uid)
		})
	}
}

func TestFirebaseVerifier_CachesCertificates(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := newCertServer(t, map[string]string{"kid-1": newCertPEM(t, key)})
	v := NewFirebaseVerifier(testProject, srv.URL, time.Second, nil)
	token := signFirebaseToken(t, key, "kid-1", nil)

	for i := 0; i < 3; i++ {
		_, err := v.VerifyToken(context.Background(), token)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&srv.hits))
}

func TestFirebaseVerifier_UpstreamUnavailable(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	v := NewFirebaseVerifier(testProject, srv.URL, time.Second, nil)
	_, err = v.VerifyToken(context.Background(), signFirebaseToken(t, key, "kid-1", nil))

	assert.True(t, errors.Is(err, models.ErrUpstreamUnavailable))
}

func TestFirebaseVerifier_CheckHealth(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	srv := newCertServer(t, map[string]string{"kid-1": newCertPEM(t, key)})
	v := NewFirebaseVerifier(testProject, srv.URL, time.Second, nil)

	require.NoError(t, v.CheckHealth(context.Background()))
	require.NoError(t, v.CheckHealth(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&srv.hits))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer down.Close()

	unavailable := NewFirebaseVerifier(testProject, down.URL, time.Second, nil)
	assert.ErrorIs(t, unavailable.CheckHealth(context.Background()), models.ErrUpstreamUnavailable)
}

func TestParseMaxAge(t *testing.T) {
	assert.Equal(t, 19800*time.Second, parseMaxAge("public, max-age=19800, must-revalidate, no-transform"))
	assert.Equal(t, defaultCertsMaxAge, parseMaxAge(""))
	assert.Equal(t, defaultCertsMaxAge, parseMaxAge("max-age=abc"))
}

func TestHMACVerifier(t *testing.T) {
	v := NewHMACVerifier("local-secret")

	token, _, err := jwtpkg.GenerateToken("local-uid", "", "local-secret", "lotaya-local", time.Hour)
	require.NoError(t, err)

	uid, err := v.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "local-uid", uid)

	_, err = NewHMACVerifier("other").VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestNewVerifier(t *testing.T) {
	v, err := NewVerifier(models.IdentityConfig{Mode: "HMAC", HMACSecret: "s"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &HMACVerifier{}, v)

	v, err = NewVerifier(models.IdentityConfig{Mode: "firebase", ProjectID: testProject}, nil)
	require.NoError(t, err)
	assert.IsType(t, &FirebaseVerifier{}, v)

	_, err = NewVerifier(models.IdentityConfig{Mode: "firebase"}, nil)
	assert.Error(t, err)
	_, err = NewVerifier(models.IdentityConfig{Mode: "hmac"}, nil)
	assert.Error(t, err)
	_, err = NewVerifier(models.IdentityConfig{Mode: "saml"}, nil)
	assert.Error(t, err)
}

func TestExtractBearer(t *testing.T) {
	token, err := ExtractBearer("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	token, err = ExtractBearer("bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "abc"} {
		_, err := ExtractBearer(header)
		assert.ErrorIs(t, err, models.ErrUnauthorized, header)
	}
}
