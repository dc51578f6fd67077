package service

import (
	"time"

	"gatekeeper/internal/domain/entity"
)

// TokenCodec derives and checks bearer token values. The derivation is keyed
// and deterministic: the same (id, userID, created) triple always yields the
// same hex string, so a stored record can be re-verified at any time.
type TokenCodec interface {
	// Derive computes the token value for the given identity fields.
	// created must already be truncated to whole seconds; the codec encodes
	// it in a single canonical binary form.
	Derive(tokenID, userID string, created time.Time) string

	// Verify recomputes the expected value from the record's identity fields
	// and compares it against the stored value in constant time.
	Verify(token *entity.AuthToken) bool
}

// TokenLifetimePolicy decides when an unused token becomes logically dead.
// Expired records stay in storage but can never validate again.
type TokenLifetimePolicy interface {
	// Expired reports whether a token last touched at lastAccessed is stale
	// as of now.
	Expired(lastAccessed, now time.Time) bool
}
