// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record the authentication core operates on.
// The core only reads PasswordHash/PasswordSalt and updates LastAuthenticated;
// everything else about a user is owned by the storage layer.
type User struct {
	ID                string    // The globally unique identifier for the user.
	Name              string    // The login name; uniqueness and case rules are the store's concern.
	PasswordHash      string    // Lowercase hex SHA-512 digest of serverSalt + PasswordSalt + password.
	PasswordSalt      string    // Per-user random salt stored alongside the hash, opaque to the core.
	LastAuthenticated time.Time // UTC instant of the most recent successful authentication.
}
