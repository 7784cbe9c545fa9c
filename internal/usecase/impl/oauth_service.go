package impl

import (
	"context"
	"log/slog"
	"time"

	"kinoauth/config"
	deliverycontext "kinoauth/internal/delivery/context"
	"kinoauth/internal/domain/cache"
	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/repository"
	"kinoauth/internal/domain/service"
	"kinoauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const oauthPasswordLength = 20

// oauthService implements the OAuthUsecase interface.
type oauthService struct {
	registry  service.ProviderRegistry
	flowStore cache.TTLStore
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	issuer    *sessionIssuer
	flowTTL   time.Duration
	logger    *slog.Logger
}

// OAuthServiceParams holds dependencies for oauthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Registry    service.ProviderRegistry
	FlowStore   cache.TTLStore
	TxManager   repository.TransactionManager
	HistoryRepo repository.HistoryRepository
	Hasher      service.PasswordHasher
	Codec       service.TokenCodec
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	return &oauthService{
		registry:  params.Registry,
		flowStore: params.FlowStore,
		txManager: params.TxManager,
		hasher:    params.Hasher,
		issuer: &sessionIssuer{
			txManager:   params.TxManager,
			historyRepo: params.HistoryRepo,
			codec:       params.Codec,
			logger:      params.Logger,
		},
		flowTTL: params.Config.Auth.PKCEVerifierTTL,
		logger:  params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin starts the authorization code flow and returns the provider redirect URL.
// The state and, for PKCE providers, the code verifier are kept in the flow
// store until the callback arrives or the TTL runs out.
func (srv *oauthService) Begin(ctx context.Context, providerName string) (*usecase.BeginOAuthOutput, error) {
	provider, err := srv.registry.Lookup(providerName)
	if err != nil {
		return nil, err
	}

	state := uuid.NewString()

	var verifier, challenge string
	if provider.RequiresPKCE() {
		verifier, err = generateCodeVerifier()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate code verifier")
		}
		challenge = codeChallengeS256(verifier)
	}

	if err := srv.flowStore.Put(ctx, state, verifier, srv.flowTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store oauth flow state")
	}

	srv.log(ctx).Debug("Started oauth flow", slog.String("provider", providerName))

	return &usecase.BeginOAuthOutput{RedirectURL: provider.AuthorizationURL(state, challenge)}, nil
}

// Complete finishes a provider flow. It exchanges the authorization code and
// fetches the provider profile, then either links the identity to the calling
// account or resolves-or-creates the account behind it and opens a session.
func (srv *oauthService) Complete(ctx context.Context, input *usecase.CompleteOAuthInput) (*usecase.CompleteOAuthOutput, error) {
	provider, err := srv.registry.Lookup(input.Provider)
	if err != nil {
		return nil, err
	}

	if input.ProviderError != "" {
		return nil, domainerrors.ErrProviderError.WithDetails(input.ProviderError)
	}
	if input.Code == "" {
		return nil, domainerrors.ErrMissingAuthorizationCode
	}

	verifier, err := srv.loadFlowState(ctx, provider, input.State)
	if err != nil {
		return nil, err
	}

	grant, err := provider.ExchangeCode(ctx, input.Code, verifier)
	if err != nil {
		srv.log(ctx).Warn("Provider code exchange failed", slog.String("provider", input.Provider), slog.Any("error", err))

		return nil, err
	}

	profile, err := provider.FetchProfile(ctx, grant)
	if err != nil {
		srv.log(ctx).Warn("Provider profile fetch failed", slog.String("provider", input.Provider), slog.Any("error", err))

		return nil, err
	}

	if input.UserID != uuid.Nil {
		if err := srv.linkAccount(ctx, input.UserID, provider.Provider(), profile.UserID, input.IP); err != nil {
			return nil, err
		}

		srv.log(ctx).Info("Provider account linked", slog.String("provider", input.Provider), slog.Any("userID", input.UserID))

		return &usecase.CompleteOAuthOutput{Linked: true}, nil
	}

	user, linked, err := srv.resolveAccount(ctx, provider.Provider(), profile)
	if err != nil {
		return nil, err
	}

	if linked {
		srv.issuer.recordHistory(ctx, &entity.HistoryEntry{
			UserID: user.ID,
			Action: entity.LinkAction(provider.Provider()),
			IP:     input.IP,
		})
	}

	accessToken, refreshToken, err := srv.issuer.openSession(ctx, user, input.UserAgent, input.IP, entity.ActionLogin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session after oauth login")
	}

	srv.log(ctx).Info("OAuth login completed", slog.String("provider", input.Provider), slog.Any("userID", user.ID))

	return &usecase.CompleteOAuthOutput{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// loadFlowState returns the stored code verifier for a PKCE flow. An unknown
// or expired state means the flow was never started here; providers that do
// not use PKCE tolerate the miss since their exchange needs no verifier.
func (srv *oauthService) loadFlowState(ctx context.Context, provider service.OAuthProvider, state string) (string, error) {
	verifier, err := srv.flowStore.Get(ctx, state)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			if !provider.RequiresPKCE() {
				return "", nil
			}

			return "", domainerrors.ErrProviderError.WrapMessage("unknown or expired oauth state")
		}

		return "", errors.Wrap(err, "failed to load oauth flow state")
	}

	if provider.RequiresPKCE() && verifier == "" {
		return "", domainerrors.ErrProviderError.WrapMessage("missing code verifier for flow")
	}

	return verifier, nil
}

// linkAccount attaches a provider identity to an already-authenticated user.
func (srv *oauthService) linkAccount(ctx context.Context, userID uuid.UUID, providerType entity.ProviderType, providerUserID, ip string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linkRepo := repoFactory.NewOAuthLinkRepository()

		// A mapping to any account, the caller's included, blocks the link.
		if _, findErr := linkRepo.FindOAuthLinkByProviderUserID(ctx, providerType, providerUserID); findErr == nil {
			return domainerrors.ErrOAuthAccountAlreadyLinked
		} else if !errors.Is(findErr, repository.ErrOAuthLinkNotFound) {
			return errors.Wrap(findErr, "failed to look up oauth link")
		}

		createErr := linkRepo.CreateOAuthLink(ctx, &entity.OAuthLink{
			UserID:         userID,
			Provider:       providerType,
			ProviderUserID: providerUserID,
		})
		if createErr != nil {
			if errors.Is(createErr, repository.ErrOAuthLinkAlreadyExists) {
				return domainerrors.ErrOAuthAccountAlreadyLinked
			}

			return errors.Wrap(createErr, "failed to create oauth link")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.issuer.recordHistory(ctx, &entity.HistoryEntry{
		UserID: userID,
		Action: entity.LinkAction(providerType),
		IP:     ip,
	})

	return nil
}

// resolveAccount maps a provider identity onto a local account, creating the
// link and, when nothing matches the profile email, the account itself.
// The returned flag reports whether a new link was created.
func (srv *oauthService) resolveAccount(ctx context.Context, providerType entity.ProviderType, profile *service.ProviderProfile) (*entity.User, bool, error) {
	var user *entity.User
	var linked bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linkRepo := repoFactory.NewOAuthLinkRepository()
		userRepo := repoFactory.NewUserRepository()

		link, err := linkRepo.FindOAuthLinkByProviderUserID(ctx, providerType, profile.UserID)
		if err == nil {
			user, err = userRepo.FindUserByID(ctx, link.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to load linked user")
			}

			return nil
		}
		if !errors.Is(err, repository.ErrOAuthLinkNotFound) {
			return errors.Wrap(err, "failed to look up oauth link")
		}

		user, err = srv.findOrCreateByEmail(ctx, userRepo, profile)
		if err != nil {
			return err
		}

		newLink := &entity.OAuthLink{
			UserID:         user.ID,
			Provider:       providerType,
			ProviderUserID: profile.UserID,
		}
		if err := linkRepo.CreateOAuthLink(ctx, newLink); err != nil {
			if errors.Is(err, repository.ErrOAuthLinkAlreadyExists) {
				return domainerrors.ErrOAuthAccountAlreadyLinked
			}

			return errors.Wrap(err, "failed to create oauth link")
		}
		linked = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return user, linked, nil
}

// findOrCreateByEmail matches the profile email against existing accounts,
// creating a fresh account with a throwaway password when none matches.
func (srv *oauthService) findOrCreateByEmail(ctx context.Context, userRepo repository.UserRepository, profile *service.ProviderProfile) (*entity.User, error) {
	user, err := userRepo.FindUserByEmail(ctx, profile.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	password, err := generatePassword(oauthPasswordLength)
	if err != nil {
		return nil, err
	}
	passwordHash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash generated password")
	}

	newUser := &entity.User{
		Login:        profile.Email,
		Email:        profile.Email,
		PasswordHash: passwordHash,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Roles:        entity.Roles{entity.RoleUser},
		IsActive:     true,
	}
	if err := userRepo.CreateUser(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user from provider profile")
	}

	return newUser, nil
}

// Unlink removes a user's link to a provider account.
func (srv *oauthService) Unlink(ctx context.Context, userID uuid.UUID, providerName string) error {
	provider, err := srv.registry.Lookup(providerName)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		delErr := repoFactory.NewOAuthLinkRepository().DeleteOAuthLinkByUserAndProvider(ctx, userID, provider.Provider())
		if errors.Is(delErr, repository.ErrOAuthLinkNotFound) {
			return domainerrors.ErrOAuthAccountNotLinked
		}

		return delErr
	})
	if err != nil {
		srv.log(ctx).Warn("Unlink failed", slog.String("provider", providerName), slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.issuer.recordHistory(ctx, &entity.HistoryEntry{
		UserID: userID,
		Action: entity.UnlinkAction(provider.Provider()),
	})

	srv.log(ctx).Info("Unlinked provider account", slog.String("provider", providerName), slog.Any("userID", userID))

	return nil
}
