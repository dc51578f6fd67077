// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// LoginInput carries the credential pair presented at login.
type LoginInput struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput bundles the authenticated user with the freshly minted token.
type LoginOutput struct {
	User  *entity.User
	Token *entity.AuthToken
}

// AuthUsecase defines the session-authentication operations.
//
// All failure classes (unknown name, wrong password, missing token, forged
// token, expired token, orphaned token) surface as the same
// domainerrors.ErrInvalidCredentials so callers cannot tell them apart.
// Logs distinguish them for observability only.
type AuthUsecase interface {
	// Login verifies a name/password pair and, on success, mints and persists
	// a new session token and bumps the user's last-authenticated time.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// AuthenticateWithToken resolves a bearer token value back to its owning
	// user, bumping last-accessed on the token and last-authenticated on the
	// user. Tokens whose owner no longer exists are purged on discovery.
	AuthenticateWithToken(ctx context.Context, tokenValue string) (*entity.User, error)

	// Revoke deletes the token record for the given bearer value. Revoking
	// an absent token is not an error.
	Revoke(ctx context.Context, tokenValue string) error
}
