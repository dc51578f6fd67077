package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"
)

// ErrAuthTokenNotFound is returned when no token record matches a lookup.
var ErrAuthTokenNotFound = errors.New("auth token not found")

// AuthTokenRepository defines the operations for session token persistence.
// The store is the sole consistency authority: the core performs no locking
// of its own and treats conflicting writes as last-writer-wins.
type AuthTokenRepository interface {
	// Insert persists a newly minted token record.
	Insert(ctx context.Context, token *entity.AuthToken) error

	// FindByToken retrieves a token record by its derived bearer value.
	FindByToken(ctx context.Context, tokenValue string) (*entity.AuthToken, error)

	// Update modifies an existing token record (last-accessed bumps).
	Update(ctx context.Context, token *entity.AuthToken) error

	// DeleteByToken removes a token record by its bearer value.
	// Deleting an absent token is not an error.
	DeleteByToken(ctx context.Context, tokenValue string) error
}
