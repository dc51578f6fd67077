package impl

import (
	"context"
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/infra/auth"
	"gatekeeper/internal/infra/persistence/memory"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	service   usecase.AuthUsecase
	userRepo  *memory.UserRepository
	tokenRepo *memory.AuthTokenRepository
	hasher    service.PasswordHasher
	codec     service.TokenCodec
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := newTestConfig()
	userRepo := memory.NewUserRepository()
	tokenRepo := memory.NewAuthTokenRepository()
	hasher := auth.NewSHA512Hasher(cfg)
	codec := auth.NewHMACCodec(cfg)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Hasher:    hasher,
		Codec:     codec,
		Lifetime:  auth.NewMonthlyLifetimePolicy(),
		Logger:    newDiscardLogger(),
	})

	return &authFixture{
		service:   svc,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		codec:     codec,
	}
}

func (f *authFixture) seedUser(name, password string) *entity.User {
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		PasswordSalt: "per-user-salt",
	}
	user.PasswordHash = f.hasher.Hash(password, user.PasswordSalt)
	f.userRepo.Seed(user)

	return user
}

func TestAuthService_LoginSuccess(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()
	seeded := fixture.seedUser("alice", "pw1")

	output, err := fixture.service.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.NotNil(t, output.User)
	require.NotNil(t, output.Token)

	token := output.Token
	assert.Equal(t, seeded.ID, token.UserID)
	assert.NotEmpty(t, token.ID)
	// Created is truncated to whole seconds before derivation; the stored
	// value must equal a fresh recomputation from the identity fields.
	assert.Zero(t, token.Created.Nanosecond())
	assert.Equal(t, token.Created, token.LastAccessed)
	assert.Equal(t, fixture.codec.Derive(token.ID, token.UserID, token.Created), token.Token)

	// The token was persisted and the user's last-authenticated advanced.
	stored, err := fixture.tokenRepo.FindByToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.ID, stored.ID)

	storedUser, err := fixture.userRepo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, token.LastAccessed, storedUser.LastAuthenticated)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()
	fixture.seedUser("alice", "pw1")

	_, wrongPassword := fixture.service.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "wrong"})
	_, unknownUser := fixture.service.Login(ctx, &usecase.LoginInput{Name: "nobody", Password: "pw1"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.True(t, errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownUser, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_LoginIssuesIndependentTokens(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()
	fixture.seedUser("alice", "pw1")

	first, err := fixture.service.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "pw1"})
	require.NoError(t, err)
	second, err := fixture.service.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "pw1"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Token.Token, second.Token.Token)

	// Revoking one session leaves the other usable.
	require.NoError(t, fixture.service.Revoke(ctx, first.Token.Token))

	_, err = fixture.service.AuthenticateWithToken(ctx, first.Token.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	user, err := fixture.service.AuthenticateWithToken(ctx, second.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
}

func TestAuthService_AuthenticateWithTokenRoundTrip(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()
	seeded := fixture.seedUser("alice", "pw1")

	output, err := fixture.service.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "pw1"})
	require.NoError(t, err)

	user, err := fixture.service.AuthenticateWithToken(ctx, output.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)

	// Successful validation bumps last-accessed on the token and
	// last-authenticated on the user.
	stored, err := fixture.tokenRepo.FindByToken(ctx, output.Token.Token)
	require.NoError(t, err)
	assert.False(t, stored.LastAccessed.Before(output.Token.LastAccessed))
	assert.Equal(t, stored.LastAccessed, user.LastAuthenticated)
}

func TestAuthService_AuthenticateWithUnknownToken(t *testing.T) {
	fixture := newAuthFixture(t)

	_, err := fixture.service.AuthenticateWithToken(context.Background(), "no-such-token")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_AuthenticateWithTamperedRecord(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()
	fixture.seedUser("alice", "pw1")

	output, err := fixture.service.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "pw1"})
	require.NoError(t, err)
	minted := output.Token

	cases := map[string]func(token *entity.AuthToken){
		"id":      func(token *entity.AuthToken) { token.ID = uuid.New().String() },
		"user id": func(token *entity.AuthToken) { token.UserID = uuid.New().String() },
		"created": func(token *entity.AuthToken) { token.Created = token.Created.Add(time.Second) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tampered := *minted
			mutate(&tampered)
			fixture.tokenRepo.Seed(&tampered)

			_, err := fixture.service.AuthenticateWithToken(ctx, tampered.Token)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

			// A tampered record is rejected, not deleted.
			_, err = fixture.tokenRepo.FindByToken(ctx, tampered.Token)
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_AuthenticateWithExpiredToken(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()
	seeded := fixture.seedUser("alice", "pw1")

	created := time.Now().UTC().Truncate(time.Second).AddDate(0, -2, 0)
	stale := &entity.AuthToken{
		ID:           uuid.New().String(),
		UserID:       seeded.ID,
		Created:      created,
		LastAccessed: created,
	}
	stale.Token = fixture.codec.Derive(stale.ID, stale.UserID, stale.Created)
	fixture.tokenRepo.Seed(stale)

	_, err := fixture.service.AuthenticateWithToken(ctx, stale.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	// Passive expiry: the record stays in storage, permanently unusable.
	remaining, err := fixture.tokenRepo.FindByToken(ctx, stale.Token)
	require.NoError(t, err)
	assert.Equal(t, created, remaining.LastAccessed)
}

func TestAuthService_OrphanTokenIsPurgedOnDiscovery(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()
	seeded := fixture.seedUser("alice", "pw1")

	output, err := fixture.service.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "pw1"})
	require.NoError(t, err)

	fixture.userRepo.Delete(seeded.ID)

	_, err = fixture.service.AuthenticateWithToken(ctx, output.Token.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = fixture.tokenRepo.FindByToken(ctx, output.Token.Token)
	assert.True(t, errors.Is(err, repository.ErrAuthTokenNotFound))
}

func TestAuthService_RevokeIsIdempotent(t *testing.T) {
	fixture := newAuthFixture(t)
	ctx := context.Background()
	fixture.seedUser("alice", "pw1")

	output, err := fixture.service.Login(ctx, &usecase.LoginInput{Name: "alice", Password: "pw1"})
	require.NoError(t, err)

	require.NoError(t, fixture.service.Revoke(ctx, output.Token.Token))

	_, err = fixture.service.AuthenticateWithToken(ctx, output.Token.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	// Revoking an already-absent token is not an error.
	assert.NoError(t, fixture.service.Revoke(ctx, output.Token.Token))
	assert.NoError(t, fixture.service.Revoke(ctx, "never-existed"))
}
