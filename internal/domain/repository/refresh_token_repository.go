package repository

import (
	"context"

	"kinoauth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token and session management operations.
// This supports multi-device login and remote logout functionality.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// DeleteRefreshTokenByValue deletes a refresh token by its exact token string.
	// It returns ErrRefreshTokenNotFound when no row matched, which lets the
	// caller detect a concurrent rotation of the same token.
	DeleteRefreshTokenByValue(ctx context.Context, token string) error

	// DeleteRefreshTokensForDevice removes all refresh tokens tied to a single
	// device session of a user.
	DeleteRefreshTokensForDevice(ctx context.Context, userID, deviceID uuid.UUID) error

	// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
	// This is useful for "logout from all devices" functionality.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
