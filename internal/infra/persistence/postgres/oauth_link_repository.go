package postgres

import (
	"context"

	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/repository"
	"kinoauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// oauthLinkRepository implements the domain.OAuthLinkRepository interface.
type oauthLinkRepository struct {
	db *gorm.DB
}

// NewOAuthLinkRepository is the constructor for oauthLinkRepository.
func NewOAuthLinkRepository(db *gorm.DB) repository.OAuthLinkRepository {
	return &oauthLinkRepository{db: db}
}

// CreateOAuthLink persists a new provider account link.
func (repo *oauthLinkRepository) CreateOAuthLink(ctx context.Context, link *entity.OAuthLink) error {
	linkM := fromOAuthLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrOAuthLinkAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create oauth link")
	}

	// Update the entity with generated values
	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// FindOAuthLinkByProviderUserID retrieves a link by provider and the provider-side account ID.
func (repo *oauthLinkRepository) FindOAuthLinkByProviderUserID(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.OAuthLink, error) {
	var linkM model.OAuthLinkModel
	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider.String(), providerUserID).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOAuthLinkNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOAuthLinkDomain(&linkM), nil
}

// FindOAuthLinkByUserAndProvider retrieves a user's link for one provider.
func (repo *oauthLinkRepository) FindOAuthLinkByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.OAuthLink, error) {
	var linkM model.OAuthLinkModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOAuthLinkNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOAuthLinkDomain(&linkM), nil
}

// DeleteOAuthLinkByUserAndProvider removes a user's link for one provider.
func (repo *oauthLinkRepository) DeleteOAuthLinkByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Delete(&model.OAuthLinkModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	// If no rows were affected, there was no link to remove.
	if result.RowsAffected == 0 {
		return repository.ErrOAuthLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOAuthLinkDomain converts a GORM OAuthLinkModel to a domain OAuthLink entity.
func toOAuthLinkDomain(data *model.OAuthLinkModel) *entity.OAuthLink {
	if data == nil {
		return nil
	}

	return &entity.OAuthLink{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		CreatedAt:      data.CreatedAt,
	}
}

// fromOAuthLinkDomain converts a domain OAuthLink entity to a GORM OAuthLinkModel.
func fromOAuthLinkDomain(data *entity.OAuthLink) *model.OAuthLinkModel {
	if data == nil {
		return nil
	}

	return &model.OAuthLinkModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider.String(),
		ProviderUserID: data.ProviderUserID,
		CreatedAt:      data.CreatedAt,
	}
}
