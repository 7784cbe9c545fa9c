// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"kinoauth/config"
	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/service"
	"kinoauth/internal/errors"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
type jwtCodec struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTCodec is the constructor for jwtCodec.
// It takes configuration values to create a new token codec instance.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtCodec{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
	}, nil
}

// IssueAccessToken creates a signed access token for a user session.
func (s *jwtCodec) IssueAccessToken(subject string, deviceID uuid.UUID, roles entity.Roles) (string, error) {
	return s.sign(subject, deviceID, roles.ToStrings(), s.accessTTL, s.accessSecret, service.TokenTypeAccess)
}

// IssueRefreshToken creates a signed refresh token for a user session.
func (s *jwtCodec) IssueRefreshToken(subject string, deviceID uuid.UUID) (string, error) {
	return s.sign(subject, deviceID, nil, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
}

// VerifyAccessToken checks the signature and expiry of an access token.
func (s *jwtCodec) VerifyAccessToken(token string) (*service.AccessTokenPayload, error) {
	claims, err := s.verify(token, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	roles, _ := claims["roles"].([]any)
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		if name, ok := r.(string); ok {
			names = append(names, name)
		}
	}

	subject, deviceID, expiresAt, err := standardClaims(claims)
	if err != nil {
		return nil, err
	}

	return &service.AccessTokenPayload{
		Subject:   subject,
		DeviceID:  deviceID,
		Roles:     entity.RolesFromStrings(names),
		ExpiresAt: expiresAt,
	}, nil
}

// VerifyRefreshToken checks the signature and expiry of a refresh token.
func (s *jwtCodec) VerifyRefreshToken(token string) (*service.RefreshTokenPayload, error) {
	claims, err := s.verify(token, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	subject, deviceID, expiresAt, err := standardClaims(claims)
	if err != nil {
		return nil, err
	}

	return &service.RefreshTokenPayload{
		Subject:   subject,
		DeviceID:  deviceID,
		ExpiresAt: expiresAt,
	}, nil
}

// AccessTokenTTL returns the configured lifetime of access tokens.
func (s *jwtCodec) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured lifetime of refresh tokens.
func (s *jwtCodec) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// sign is a private helper to create a JWT with the session claims.
func (s *jwtCodec) sign(subject string, deviceID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       subject,              // Subject (the user's login)
		"device_id": deviceID.String(),    // Session device
		"iat":       now.Unix(),           // Issued At
		"exp":       now.Add(ttl).Unix(),  // Expiration Time
		"type":      tokenType,            // Type of token (access or refresh)
	}
	// Only access tokens carry roles, for stateless authorization.
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// verify parses the token string against a secret and maps library failures
// onto the domain error taxonomy.
func (s *jwtCodec) verify(tokenString, secret, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, domainerrors.ErrTokenSignatureInvalid
		default:
			return nil, domainerrors.ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrTokenMalformed
	}
	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return nil, domainerrors.ErrTokenMalformed
	}

	return claims, nil
}

// standardClaims extracts the session fields shared by both token types.
func standardClaims(claims jwt.MapClaims) (string, uuid.UUID, time.Time, error) {
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", uuid.Nil, time.Time{}, domainerrors.ErrTokenMalformed
	}

	rawDevice, _ := claims["device_id"].(string)
	deviceID, err := uuid.Parse(rawDevice)
	if err != nil {
		return "", uuid.Nil, time.Time{}, domainerrors.ErrTokenMalformed
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", uuid.Nil, time.Time{}, domainerrors.ErrTokenMalformed
	}

	return subject, deviceID, exp.Time, nil
}
