// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device identifies one client a user has logged in from. A live session is
// scoped to exactly one device; a user may hold many devices, each
// independently revocable.
type Device struct {
	ID        uuid.UUID // The unique ID for this device record.
	UserID    uuid.UUID // The ID of the user who owns this device.
	UserAgent string    // The User-Agent string the device presented at login.
	CreatedAt time.Time
	UpdatedAt time.Time
}
