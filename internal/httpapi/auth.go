package httpapi

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Authenticator admits requests whose credential hashes to the configured
// digest. It holds no per-request state.
type Authenticator struct {
	digest []byte
}

// NewAuthenticator creates an authenticator for a hex SHA-256 digest.
func NewAuthenticator(digestHex string) *Authenticator {
	return &Authenticator{digest: []byte(strings.ToLower(digestHex))}
}

// Admit reports whether credential is the shared secret. A missing header is
// passed as "" and is rejected like any other wrong secret.
func (a *Authenticator) Admit(credential string) bool {
	got := HashCredential(credential)
	return subtle.ConstantTimeCompare([]byte(got), a.digest) == 1
}

// HashCredential returns the lower-case hex SHA-256 of secret.
func HashCredential(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
