package impl

import (
	"context"
	"log/slog"

	deliverycontext "kinoauth/internal/delivery/context"
	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/repository"
	"kinoauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager   repository.TransactionManager
	deviceRepo  repository.DeviceRepository
	historyRepo repository.HistoryRepository
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	DeviceRepo  repository.DeviceRepository
	HistoryRepo repository.HistoryRepository
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:   params.TxManager,
		deviceRepo:  params.DeviceRepo,
		historyRepo: params.HistoryRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDevices returns the devices the user has opened sessions from.
func (srv *sessionService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindDevicesByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list devices", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// GetDevice returns one of the user's devices. Ownership is checked here so
// a device ID leaked from another account reads as absent, not forbidden.
func (srv *sessionService) GetDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}

// History returns a page of the user's account activity, newest first.
func (srv *sessionService) History(ctx context.Context, input *usecase.HistoryInput) ([]*entity.HistoryEntry, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	entries, err := srv.historyRepo.FindHistoryByUserID(ctx, input.UserID, limit, offset)
	if err != nil {
		srv.log(ctx).Error("Failed to load history", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load history")
	}

	return entries, nil
}

// UpdateProfile applies a partial update to the user's profile fields. The
// read and write share one transaction so concurrent updates do not clobber
// each other's fields.
func (srv *sessionService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		var findErr error
		user, findErr = userRepo.FindUserByID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(findErr, "failed to find user for profile update")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}

		return userRepo.UpdateUser(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", input.UserID))

	return user, nil
}
