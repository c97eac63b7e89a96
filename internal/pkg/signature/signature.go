// Package signature implements the keyed-hash signing shared with the
// payment gateway. Both the outbound request and the inbound callback are
// signed over field values joined in a fixed, contracted order.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Delimiter separates field values in the canonical signing string
const Delimiter = "|"

// CanonicalString joins the ordered field values with Delimiter
func CanonicalString(values []string) string {
	return strings.Join(values, Delimiter)
}

// Signer signs and verifies canonical strings with a shared secret
type Signer struct {
	secret []byte
}

// NewSigner creates a signer for the given shared secret
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) mac(values []string) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(CanonicalString(values)))
	return h.Sum(nil)
}

// Sign returns the base64 encoded HMAC-SHA256 of the ordered values
func (s *Signer) Sign(values []string) string {
	return base64.StdEncoding.EncodeToString(s.mac(values))
}

// Verify recomputes the signature of values and compares it in constant time.
// A signature that is not valid base64 never verifies.
func (s *Signer) Verify(values []string, signature string) bool {
	given, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(s.mac(values), given)
}
