package postgres

import (
	"context"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authTokenRepository implements the repository.AuthTokenRepository interface.
type authTokenRepository struct {
	db *gorm.DB
}

// NewAuthTokenRepository is the constructor for authTokenRepository.
func NewAuthTokenRepository(db *gorm.DB) repository.AuthTokenRepository {
	return &authTokenRepository{db: db}
}

// Insert persists a newly minted token record.
func (repo *authTokenRepository) Insert(ctx context.Context, token *entity.AuthToken) error {
	if err := repo.db.WithContext(ctx).Create(fromAuthTokenDomain(token)).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FindByToken retrieves a token record by its derived bearer value.
func (repo *authTokenRepository) FindByToken(ctx context.Context, tokenValue string) (*entity.AuthToken, error) {
	var tokenM model.AuthTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", tokenValue).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAuthTokenDomain(&tokenM), nil
}

// Update modifies an existing token record.
func (repo *authTokenRepository) Update(ctx context.Context, token *entity.AuthToken) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthTokenModel{}).
		Where("id = ?", token.ID).
		Updates(fromAuthTokenDomain(token))
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthTokenNotFound
	}

	return nil
}

// DeleteByToken removes a token record by its bearer value.
// Deleting an absent token is not an error.
func (repo *authTokenRepository) DeleteByToken(ctx context.Context, tokenValue string) error {
	if err := repo.db.WithContext(ctx).
		Where("token = ?", tokenValue).
		Delete(&model.AuthTokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func toAuthTokenDomain(tokenM *model.AuthTokenModel) *entity.AuthToken {
	return &entity.AuthToken{
		ID:           tokenM.ID,
		UserID:       tokenM.UserID,
		Token:        tokenM.Token,
		Created:      tokenM.Created.UTC(),
		LastAccessed: tokenM.LastAccessed.UTC(),
	}
}

func fromAuthTokenDomain(token *entity.AuthToken) *model.AuthTokenModel {
	return &model.AuthTokenModel{
		ID:           token.ID,
		UserID:       token.UserID,
		Token:        token.Token,
		Created:      token.Created.UTC(),
		LastAccessed: token.LastAccessed.UTC(),
	}
}
