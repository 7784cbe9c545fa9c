package impl

import (
	"time"

	"kinoauth/internal/domain/entity"
	"kinoauth/internal/domain/service"

	"github.com/google/uuid"
)

// accessPayload builds a verified access token payload for tests.
func accessPayload(subject string, deviceID uuid.UUID, expiresAt time.Time) *service.AccessTokenPayload {
	return &service.AccessTokenPayload{
		Subject:   subject,
		DeviceID:  deviceID,
		Roles:     entity.Roles{entity.RoleUser},
		ExpiresAt: expiresAt,
	}
}

// refreshPayload builds a verified refresh token payload for tests.
func refreshPayload(subject string, deviceID uuid.UUID) *service.RefreshTokenPayload {
	return &service.RefreshTokenPayload{
		Subject:   subject,
		DeviceID:  deviceID,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}
