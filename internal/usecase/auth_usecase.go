// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kinoauth/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Login     string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Login     string
	Password  string
	UserAgent string
	IP        string
}

// RefreshInput defines the data required to rotate a session's token pair.
type RefreshInput struct {
	RefreshToken string
	IP           string
}

// LogoutInput defines the data required to close a session.
// Everywhere drops the refresh tokens of every device, not just the caller's.
type LogoutInput struct {
	AccessToken string
	Everywhere  bool
	IP          string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// TokenPairOutput returns the tokens issued for a session.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthenticatedUser is the result of verifying an access token.
type AuthenticatedUser struct {
	User     *entity.User
	DeviceID uuid.UUID
}

// AuthUsecase defines the interface for credential and session lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error

	// Authenticate verifies an access token against the signature, expiry and
	// the revocation denylist, and resolves the account behind it.
	Authenticate(ctx context.Context, accessToken string) (*AuthenticatedUser, error)
}
