// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It holds no mutable
// state of its own; the two repositories are the consistency authority and
// conflicting writes resolve last-writer-wins.
type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.AuthTokenRepository
	hasher    service.PasswordHasher
	codec     service.TokenCodec
	lifetime  service.TokenLifetimePolicy
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TokenRepo repository.AuthTokenRepository
	Hasher    service.PasswordHasher
	Codec     service.TokenCodec
	Lifetime  service.TokenLifetimePolicy
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:  params.UserRepo,
		tokenRepo: params.TokenRepo,
		hasher:    params.Hasher,
		codec:     params.Codec,
		lifetime:  params.Lifetime,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the password login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Authenticating user", slog.String("name", input.Name))

	user, err := srv.userRepo.FindByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Indistinguishable from a wrong password for the caller.
			srv.log(ctx).Info("Authentication failed, no such name", slog.String("name", input.Name))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	if !srv.hasher.Verify(input.Password, user.PasswordSalt, user.PasswordHash) {
		srv.log(ctx).Info("Authentication failed, wrong password", slog.String("name", input.Name))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Info("Creating new token for user", slog.String("userID", user.ID))

	token := srv.mintToken(user.ID)
	if err := srv.tokenRepo.Insert(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to insert auth token")
	}

	// A failed user update after the token insert is an accepted
	// inconsistency window; last-authenticated is advisory.
	user.LastAuthenticated = token.LastAccessed
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user last-authenticated")
	}

	return &usecase.LoginOutput{User: user, Token: token}, nil
}

// AuthenticateWithToken resolves a bearer token back to its owning user.
func (srv *authService) AuthenticateWithToken(ctx context.Context, tokenValue string) (*entity.User, error) {
	srv.log(ctx).Debug("Authenticating token")

	token, err := srv.tokenRepo.FindByToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, repository.ErrAuthTokenNotFound) {
			srv.log(ctx).Info("Authentication token does not exist")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "token authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find auth token")
	}

	// Tampered or corrupted records fail without being mutated or deleted.
	if !srv.codec.Verify(token) {
		srv.log(ctx).Warn("Authentication token was invalid", slog.String("tokenID", token.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "token authentication failed")
	}

	// Passive expiry: the record stays in storage but never validates again.
	now := time.Now().UTC()
	if srv.lifetime.Expired(token.LastAccessed, now) {
		srv.log(ctx).Info("Authentication token has expired", slog.String("tokenID", token.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "token authentication failed")
	}

	token.LastAccessed = now
	if err := srv.tokenRepo.Update(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to update auth token last-accessed")
	}

	user, err := srv.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Orphan: valid token, owner gone. Purge on discovery.
			srv.log(ctx).Warn("Token validated for non-existent user, removing token",
				slog.String("tokenID", token.ID), slog.String("userID", token.UserID))

			if deleteErr := srv.tokenRepo.DeleteByToken(ctx, tokenValue); deleteErr != nil {
				return nil, errors.Wrap(deleteErr, "failed to delete orphaned auth token")
			}

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "token authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find token owner")
	}

	user.LastAuthenticated = token.LastAccessed
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user last-authenticated")
	}

	return user, nil
}

// Revoke unconditionally deletes the token record by value.
func (srv *authService) Revoke(ctx context.Context, tokenValue string) error {
	srv.log(ctx).Info("Revoking token")

	if err := srv.tokenRepo.DeleteByToken(ctx, tokenValue); err != nil {
		return errors.Wrap(err, "failed to delete auth token")
	}

	return nil
}

// mintToken builds a new AuthToken for the user. Created is truncated to
// whole seconds before derivation so the value a client later reads back
// from storage matches what validation recomputes.
func (srv *authService) mintToken(userID string) *entity.AuthToken {
	created := time.Now().UTC().Truncate(time.Second)

	token := &entity.AuthToken{
		ID:           uuid.New().String(),
		UserID:       userID,
		Created:      created,
		LastAccessed: created,
	}
	token.Token = srv.codec.Derive(token.ID, token.UserID, token.Created)

	return token
}
