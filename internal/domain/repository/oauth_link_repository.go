package repository

import (
	"context"

	"kinoauth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for oauth link persistence.
var (
	// ErrOAuthLinkNotFound is returned when no link exists for the lookup key.
	ErrOAuthLinkNotFound = errors.New("oauth link not found")
	// ErrOAuthLinkAlreadyExists is returned when the provider account is already linked.
	ErrOAuthLinkAlreadyExists = errors.New("oauth link already exists")
)

// OAuthLinkRepository defines the interface for external provider account links.
type OAuthLinkRepository interface {
	// CreateOAuthLink persists a new provider account link.
	CreateOAuthLink(ctx context.Context, link *entity.OAuthLink) error

	// FindOAuthLinkByProviderUserID retrieves a link by provider and the
	// provider-side account ID.
	FindOAuthLinkByProviderUserID(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.OAuthLink, error)

	// FindOAuthLinkByUserAndProvider retrieves a user's link for one provider.
	FindOAuthLinkByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.OAuthLink, error)

	// DeleteOAuthLinkByUserAndProvider removes a user's link for one provider.
	// It returns ErrOAuthLinkNotFound when no row matched.
	DeleteOAuthLinkByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
}
