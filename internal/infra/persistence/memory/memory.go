// Package memory contains in-memory implementations of the persistence
// contracts, used by the usecase tests. All access is serialized with a
// mutex, giving last-writer-wins semantics like the real store.
package memory

import (
	"context"
	"sync"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
)

// UserRepository implements repository.UserRepository over a map. It is
// exported so tests can seed and delete users directly.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	names map[string]string // login name -> user id
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:  make(map[string]*entity.User),
		names: make(map[string]string),
	}
}

// Seed inserts or replaces a user record.
func (repo *UserRepository) Seed(user *entity.User) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *user
	repo.byID[user.ID] = &clone
	repo.names[user.Name] = user.ID
}

// Delete removes a user record, if present.
func (repo *UserRepository) Delete(id string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if user, ok := repo.byID[id]; ok {
		delete(repo.names, user.Name)
		delete(repo.byID, id)
	}
}

// FindByName retrieves a single user by login name.
func (repo *UserRepository) FindByName(_ context.Context, name string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.names[name]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *repo.byID[id]

	return &clone, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

// Update modifies an existing user record.
func (repo *UserRepository) Update(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	repo.byID[user.ID] = &clone
	repo.names[user.Name] = user.ID

	return nil
}

// AuthTokenRepository implements repository.AuthTokenRepository over a map
// keyed by the derived token value.
type AuthTokenRepository struct {
	mu      sync.RWMutex
	byValue map[string]*entity.AuthToken
}

// NewAuthTokenRepository is the constructor for the in-memory token repository.
func NewAuthTokenRepository() *AuthTokenRepository {
	return &AuthTokenRepository{byValue: make(map[string]*entity.AuthToken)}
}

// Seed inserts or replaces a token record directly, bypassing Insert.
func (repo *AuthTokenRepository) Seed(token *entity.AuthToken) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *token
	repo.byValue[token.Token] = &clone
}

// Insert persists a newly minted token record.
func (repo *AuthTokenRepository) Insert(_ context.Context, token *entity.AuthToken) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	clone := *token
	repo.byValue[token.Token] = &clone

	return nil
}

// FindByToken retrieves a token record by its bearer value.
func (repo *AuthTokenRepository) FindByToken(_ context.Context, tokenValue string) (*entity.AuthToken, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	token, ok := repo.byValue[tokenValue]
	if !ok {
		return nil, repository.ErrAuthTokenNotFound
	}
	clone := *token

	return &clone, nil
}

// Update modifies an existing token record. The bearer value is immutable for
// the record's lifetime, so the map key never changes.
func (repo *AuthTokenRepository) Update(_ context.Context, token *entity.AuthToken) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byValue[token.Token]; !ok {
		return repository.ErrAuthTokenNotFound
	}
	clone := *token
	repo.byValue[token.Token] = &clone

	return nil
}

// DeleteByToken removes a token record; absent values are a no-op.
func (repo *AuthTokenRepository) DeleteByToken(_ context.Context, tokenValue string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.byValue, tokenValue)

	return nil
}
