package service

import (
	"time"

	"kinoauth/internal/domain/entity"

	"github.com/google/uuid"
)

// Token type markers embedded in every issued token.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AccessTokenPayload carries the claims of a verified access token.
type AccessTokenPayload struct {
	Subject   string
	DeviceID  uuid.UUID
	Roles     entity.Roles
	ExpiresAt time.Time
}

// RefreshTokenPayload carries the claims of a verified refresh token.
type RefreshTokenPayload struct {
	Subject   string
	DeviceID  uuid.UUID
	ExpiresAt time.Time
}

// TokenCodec defines the interface for issuing and verifying signed tokens.
// Access and refresh tokens are signed with separate secrets, so a token of
// one kind never verifies as the other.
type TokenCodec interface {
	// IssueAccessToken creates a signed access token for a user session.
	IssueAccessToken(subject string, deviceID uuid.UUID, roles entity.Roles) (string, error)

	// IssueRefreshToken creates a signed refresh token for a user session.
	IssueRefreshToken(subject string, deviceID uuid.UUID) (string, error)

	// VerifyAccessToken checks the signature and expiry of an access token.
	VerifyAccessToken(token string) (*AccessTokenPayload, error)

	// VerifyRefreshToken checks the signature and expiry of a refresh token.
	VerifyRefreshToken(token string) (*RefreshTokenPayload, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}
