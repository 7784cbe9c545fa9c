package usecase

import (
	"context"

	"kinoauth/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryInput defines the pagination window for account activity queries.
type HistoryInput struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// UpdateProfileInput defines a partial profile update. Nil fields stay unchanged.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName *string
	LastName  *string
}

// SessionUsecase defines the interface for a user's personal area: their
// devices, activity history and profile data.
type SessionUsecase interface {
	// ListDevices returns the devices the user has opened sessions from.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// GetDevice returns one of the user's devices. A device belonging to
	// another user is reported as not found.
	GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error)

	// History returns a page of the user's account activity, newest first.
	History(ctx context.Context, input *HistoryInput) ([]*entity.HistoryEntry, error)

	// UpdateProfile applies a partial update to the user's profile fields.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
}
