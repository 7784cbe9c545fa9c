// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kinoauth/internal/delivery/context"
	"kinoauth/internal/domain/entity"
	"kinoauth/internal/domain/repository"
	"kinoauth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionIssuer opens device-bound sessions. It is shared by the credential
// and oauth login paths so both issue token pairs the same way.
type sessionIssuer struct {
	txManager   repository.TransactionManager
	historyRepo repository.HistoryRepository
	codec       service.TokenCodec
	logger      *slog.Logger
}

// log returns a request-scoped logger if available, otherwise falls back to the issuer's logger.
func (iss *sessionIssuer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, iss.logger)
}

// openSession issues a token pair for the user on the device matching the
// user-agent, registering the device on first use. Any previous refresh
// token of that device is replaced, so one device holds one session.
func (iss *sessionIssuer) openSession(ctx context.Context, user *entity.User, userAgent, ip, action string) (accessToken, refreshToken string, err error) {
	var device *entity.Device

	err = iss.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		var findErr error
		device, findErr = deviceRepo.FindDeviceByUserAndAgent(ctx, user.ID, userAgent)
		if errors.Is(findErr, repository.ErrDeviceNotFound) {
			device = &entity.Device{UserID: user.ID, UserAgent: userAgent}
			if createErr := deviceRepo.CreateDevice(ctx, device); createErr != nil {
				return errors.Wrap(createErr, "failed to register device")
			}
		} else if findErr != nil {
			return errors.Wrap(findErr, "failed to find device")
		}

		accessToken, err = iss.codec.IssueAccessToken(user.Login, device.ID, user.Roles)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}
		refreshToken, err = iss.codec.IssueRefreshToken(user.Login, device.ID)
		if err != nil {
			return errors.Wrap(err, "failed to issue refresh token")
		}

		return iss.replaceRefreshToken(ctx, repoFactory, user.ID, device.ID, refreshToken)
	})
	if err != nil {
		return "", "", err
	}

	iss.recordHistory(ctx, &entity.HistoryEntry{
		UserID:   user.ID,
		DeviceID: device.ID,
		Action:   action,
		IP:       ip,
	})

	return accessToken, refreshToken, nil
}

// replaceRefreshToken swaps the device's stored refresh token for a new one
// within the caller's transaction.
func (iss *sessionIssuer) replaceRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID, deviceID uuid.UUID, refreshToken string) error {
	refreshRepo := repoFactory.NewRefreshTokenRepository()

	if err := refreshRepo.DeleteRefreshTokensForDevice(ctx, userID, deviceID); err != nil {
		return errors.Wrap(err, "failed to drop previous refresh tokens")
	}

	newToken := &entity.RefreshToken{
		UserID:   userID,
		DeviceID: deviceID,
		Token:    refreshToken,
		IssuedAt: time.Now(),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, newToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// recordHistory appends an activity entry outside any transaction. Failures
// are logged and never propagate, history must not break the login path.
func (iss *sessionIssuer) recordHistory(ctx context.Context, entry *entity.HistoryEntry) {
	if err := iss.historyRepo.AppendHistory(ctx, entry); err != nil {
		iss.log(ctx).Warn("Failed to append history entry",
			slog.Any("userID", entry.UserID),
			slog.String("action", entry.Action),
			slog.Any("error", err))
	}
}
