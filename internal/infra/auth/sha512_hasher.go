// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
)

// sha512Hasher is a concrete implementation of the PasswordHasher interface.
// The digest is SHA-512 over serverSalt ++ perUserSalt ++ password, hex
// encoded, so a stored hash can be recomputed from the plaintext and the two
// salts alone.
type sha512Hasher struct {
	serverSalt string
}

// NewSHA512Hasher is the constructor for sha512Hasher. The server-level salt
// comes from configuration and is immutable for the process lifetime.
func NewSHA512Hasher(cfg *config.Config) service.PasswordHasher {
	return &sha512Hasher{serverSalt: cfg.Secrets.PasswordServerSalt}
}

// Hash computes the credential digest. Any string input is valid; the
// function is pure and never fails.
func (h *sha512Hasher) Hash(password, salt string) string {
	digest := sha512.Sum512([]byte(h.serverSalt + salt + password))

	return hex.EncodeToString(digest[:])
}

// Verify recomputes the digest and compares it against the stored one in
// constant time.
func (h *sha512Hasher) Verify(password, salt, digest string) bool {
	expected := h.Hash(password, salt)

	return subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) == 1
}
