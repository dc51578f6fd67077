package entity

import "time"

// AuthToken is a session-proof record. The bearer credential in Token is not
// random: it is re-derived from (ID, UserID, Created) with a process-wide
// secret, and validation only accepts the record when the stored value matches
// the recomputation.
type AuthToken struct {
	ID           string    // Token identity component, not secret.
	UserID       string    // Owning user; a token whose owner is gone is an orphan.
	Token        string    // Derived bearer credential, lowercase hex.
	Created      time.Time // UTC, truncated to whole seconds before derivation so a storage round trip cannot change it.
	LastAccessed time.Time // UTC, bumped on every successful validation; defaults to Created.
}
