package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kinoauth/internal/delivery/context"
	"kinoauth/internal/domain/cache"
	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/repository"
	"kinoauth/internal/domain/service"
	"kinoauth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// revokedMarker is the value stored in the denylist for a revoked access token.
const revokedMarker = "revoked"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	codec            service.TokenCodec
	denylist         cache.TTLStore
	issuer           *sessionIssuer
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	HistoryRepo      repository.HistoryRepository
	Hasher           service.PasswordHasher
	Codec            service.TokenCodec
	Denylist         cache.TTLStore
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		codec:            params.Codec,
		denylist:         params.Denylist,
		issuer: &sessionIssuer{
			txManager:   params.TxManager,
			historyRepo: params.HistoryRepo,
			codec:       params.Codec,
			logger:      params.Logger,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed password and the default role.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("login", input.Login))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Roles:        entity.Roles{entity.RoleUser},
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if createErr := repoFactory.NewUserRepository().CreateUser(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(createErr, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("login", input.Login), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login checks the credentials and opens a session on the calling device.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("login", input.Login))

	user, err := srv.userRepo.FindUserByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same answer as a wrong password, so probing for
			// registered logins learns nothing.
			srv.log(ctx).Warn("Login failed", slog.String("login", input.Login))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("login", input.Login))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrUserInactive, "login failed")
	}

	accessToken, refreshToken, err := srv.issuer.openSession(ctx, user, input.UserAgent, input.IP, entity.ActionLogin)
	if err != nil {
		srv.log(ctx).Error("Failed to open session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to open session during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.TokenPairOutput{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh rotates a session's token pair. The presented refresh token is
// consumed in the same transaction that stores its replacement, so each
// refresh token is usable exactly once.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	payload, err := srv.codec.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, err
	}

	var user *entity.User
	var accessToken, refreshToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		// Consuming the row first makes concurrent rotations of the same
		// token race on the delete; the loser sees zero affected rows.
		if delErr := refreshRepo.DeleteRefreshTokenByValue(ctx, input.RefreshToken); delErr != nil {
			if errors.Is(delErr, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenNotRecognized
			}

			return errors.Wrap(delErr, "failed to consume refresh token")
		}

		var findErr error
		user, findErr = repoFactory.NewUserRepository().FindUserByLogin(ctx, payload.Subject)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrRefreshTokenNotRecognized
			}

			return errors.Wrap(findErr, "failed to find user for refresh")
		}
		if !user.IsActive {
			return domainerrors.ErrUserInactive
		}

		accessToken, err = srv.codec.IssueAccessToken(user.Login, payload.DeviceID, user.Roles)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}
		refreshToken, err = srv.codec.IssueRefreshToken(user.Login, payload.DeviceID)
		if err != nil {
			return errors.Wrap(err, "failed to issue refresh token")
		}

		return srv.issuer.replaceRefreshToken(ctx, repoFactory, user.ID, payload.DeviceID, refreshToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.String("login", payload.Subject), slog.Any("error", err))

		return nil, err
	}

	srv.issuer.recordHistory(ctx, &entity.HistoryEntry{
		UserID:   user.ID,
		DeviceID: payload.DeviceID,
		Action:   entity.ActionRefresh,
		IP:       input.IP,
	})

	return &usecase.TokenPairOutput{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Logout closes the session behind an access token. The token goes onto the
// denylist for the rest of its lifetime and the device's refresh token is dropped.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	payload, err := srv.codec.VerifyAccessToken(input.AccessToken)
	if err != nil {
		return err
	}

	// A token that was already revoked must not drive another logout.
	if _, err := srv.denylist.Get(ctx, input.AccessToken); err == nil {
		return domainerrors.ErrTokenRevoked
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		return errors.Wrap(err, "failed to check token denylist")
	}

	if remaining := time.Until(payload.ExpiresAt); remaining > 0 {
		if err := srv.denylist.Put(ctx, input.AccessToken, revokedMarker, remaining); err != nil {
			srv.log(ctx).Error("Failed to denylist access token", slog.Any("error", err))

			return errors.Wrap(err, "failed to denylist access token")
		}
	}

	user, err := srv.userRepo.FindUserByLogin(ctx, payload.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user for logout")
	}

	if input.Everywhere {
		err = srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, user.ID)
	} else {
		err = srv.refreshTokenRepo.DeleteRefreshTokensForDevice(ctx, user.ID, payload.DeviceID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to drop refresh tokens during logout")
	}

	srv.issuer.recordHistory(ctx, &entity.HistoryEntry{
		UserID:   user.ID,
		DeviceID: payload.DeviceID,
		Action:   entity.ActionLogout,
		IP:       input.IP,
	})

	srv.log(ctx).Info("User logged out", slog.Any("userID", user.ID))

	return nil
}

// Authenticate verifies an access token and resolves the account behind it.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*usecase.AuthenticatedUser, error) {
	payload, err := srv.codec.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	// The denylist key is the access token itself.
	if _, err := srv.denylist.Get(ctx, accessToken); err == nil {
		return nil, domainerrors.ErrTokenRevoked
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		return nil, errors.Wrap(err, "failed to check token denylist")
	}

	user, err := srv.userRepo.FindUserByLogin(ctx, payload.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for token")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return &usecase.AuthenticatedUser{User: user, DeviceID: payload.DeviceID}, nil
}
