// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents the single live session credential for a
// (user, device) pair. Issuing a new token for the pair supersedes the prior
// row; a row disappears when it is rotated, revoked by logout, or its owner
// is deleted.
type RefreshToken struct {
	ID       uuid.UUID // The unique ID for this refresh token record.
	UserID   uuid.UUID // Links this session to the User it belongs to.
	DeviceID uuid.UUID // The device this session is scoped to.
	Token    string    // The raw signed token string, matched exactly on rotation.
	IssuedAt time.Time // When this session credential was created.
}
