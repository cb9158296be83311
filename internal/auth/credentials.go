// Package auth implements password digests and bearer token issuance.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of the password.
// The digest is deterministic, so verification recomputes and compares.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password hashes to passwordHash.
func VerifyPassword(password, passwordHash string) bool {
	digest := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(passwordHash)) == 1
}

// Issuer mints bearer tokens from a process-wide secret. The secret is
// threaded through the constructor rather than read from a global.
type Issuer struct {
	secret string
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: secret}
}

// IssueToken returns the hex-encoded SHA-256 digest of username+secret.
// The same username yields the same token for the life of the secret.
func (i *Issuer) IssueToken(username string) string {
	sum := sha256.Sum256([]byte(username + i.secret))
	return hex.EncodeToString(sum[:])
}
