package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name  string
		uid   string
		email string
	}{
		{name: "With email", uid: "firebase-uid-1", email: "aung@example.com"},
		{name: "Without email", uid: "firebase-uid-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, expiresAt, err := GenerateToken(tt.uid, tt.email, testSecret, "lotaya-test", time.Hour)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Greater(t, expiresAt, time.Now().Unix())

			claims, err := ValidateToken(token, testSecret)
			require.NoError(t, err)
			assert.Equal(t, tt.uid, claims.UserID())
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, "lotaya-test", claims.Issuer)
		})
	}
}

func TestValidateToken_Errors(t *testing.T) {
	valid, _, err := GenerateToken("uid", "", testSecret, "lotaya-test", time.Hour)
	require.NoError(t, err)

	expired, _, err := GenerateToken("uid", "", testSecret, "lotaya-test", -time.Minute)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "uid"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "Wrong secret", token: valid, secret: "other"},
		{name: "Expired", token: expired, secret: testSecret},
		{name: "Missing subject", token: noSubject, secret: testSecret},
		{name: "Unsigned", token: none, secret: testSecret},
		{name: "Garbage", token: "not.a.token", secret: testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestClaims_UserIDFallsBackToUID(t *testing.T) {
	c := &Claims{UID: "legacy"}
	assert.Equal(t, "legacy", c.UserID())
}
