package repository

import (
	"context"

	"kinoauth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for per-user device registration.
// A device identifies the user-agent a session was opened from.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindDeviceByUserAndAgent retrieves the device a user registered with a
	// given user-agent string, so repeated logins from the same client reuse
	// one session slot.
	FindDeviceByUserAndAgent(ctx context.Context, userID uuid.UUID, userAgent string) (*entity.Device, error)

	// FindDevicesByUserID retrieves all devices registered for a user.
	FindDevicesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
}
