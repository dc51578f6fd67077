// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the contract for credential digest computation.
// Implementations fold an immutable server-level salt in ahead of the
// per-user salt; the function is pure and never fails.
type PasswordHasher interface {
	// Hash computes the digest for a plaintext password and a per-user salt,
	// encoded as lowercase hex.
	Hash(password, salt string) string

	// Verify compares a plaintext password against a stored digest in
	// constant time.
	Verify(password, salt, digest string) bool
}
