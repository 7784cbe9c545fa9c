package impl

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"kinoauth/config"
	"kinoauth/internal/domain/cache"
	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/repository"
	"kinoauth/internal/domain/service"
	mockCache "kinoauth/internal/mocks/cache"
	mockRepo "kinoauth/internal/mocks/repository"
	mockService "kinoauth/internal/mocks/service"
	"kinoauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type oauthServiceMocks struct {
	registry    *mockService.MockProviderRegistry
	flowStore   *mockCache.MockTTLStore
	txManager   *mockRepo.MockTransactionManager
	historyRepo *mockRepo.MockHistoryRepository
	hasher      *mockService.MockPasswordHasher
	codec       *mockService.MockTokenCodec
}

func newOAuthServiceForTest(t *testing.T) (usecase.OAuthUsecase, *oauthServiceMocks) {
	t.Helper()

	mocks := &oauthServiceMocks{
		registry:    mockService.NewMockProviderRegistry(t),
		flowStore:   mockCache.NewMockTTLStore(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		historyRepo: mockRepo.NewMockHistoryRepository(t),
		hasher:      mockService.NewMockPasswordHasher(t),
		codec:       mockService.NewMockTokenCodec(t),
	}

	svc := NewOAuthService(OAuthServiceParams{
		Registry:    mocks.registry,
		FlowStore:   mocks.flowStore,
		TxManager:   mocks.txManager,
		HistoryRepo: mocks.historyRepo,
		Hasher:      mocks.hasher,
		Codec:       mocks.codec,
		Config: &config.Config{
			Auth: &config.AuthConfig{PKCEVerifierTTL: 600 * time.Second},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, mocks
}

// expectOpenSession wires the transaction and history expectations of a
// successful session open for tests that end in a token pair.
func expectOpenSession(t *testing.T, mocks *oauthServiceMocks, ctx context.Context, user *entity.User, userAgent string) {
	t.Helper()

	deviceID := uuid.New()
	device := &entity.Device{ID: deviceID, UserID: user.ID, UserAgent: userAgent}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockDeviceRepo.EXPECT().FindDeviceByUserAndAgent(ctx, user.ID, userAgent).Return(device, nil)
			mocks.codec.EXPECT().IssueAccessToken(user.Login, deviceID, user.Roles).Return("access-token", nil)
			mocks.codec.EXPECT().IssueRefreshToken(user.Login, deviceID).Return("refresh-token", nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokensForDevice(ctx, user.ID, deviceID).Return(nil)
			mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	mocks.historyRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.UserID == user.ID && entry.Action == entity.ActionLogin
	})).Return(nil)
}

func TestOAuthService_Begin_PKCEProvider(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("yandex").Return(provider, nil)
	provider.EXPECT().RequiresPKCE().Return(true)

	var storedState, storedVerifier string
	mocks.flowStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), 600*time.Second).
		Run(func(ctx context.Context, key string, value string, ttl time.Duration) {
			storedState = key
			storedVerifier = value
		}).
		Return(nil)

	provider.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		RunAndReturn(func(state, challenge string) string {
			assert.Equal(t, storedState, state)
			assert.Equal(t, codeChallengeS256(storedVerifier), challenge)

			return "https://provider.example/authorize?state=" + state
		})

	output, err := svc.Begin(ctx, "yandex")

	require.NoError(t, err)
	assert.Contains(t, output.RedirectURL, storedState)

	// The state is a well-formed UUID and the verifier has a conforming length.
	_, err = uuid.Parse(storedState)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(storedVerifier), 43)
	assert.LessOrEqual(t, len(storedVerifier), 128)
}

func TestOAuthService_Begin_PlainProviderStoresEmptyVerifier(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("vk").Return(provider, nil)
	provider.EXPECT().RequiresPKCE().Return(false)

	mocks.flowStore.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), "", 600*time.Second).
		Return(nil)
	provider.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string"), "").
		Return("https://provider.example/authorize")

	output, err := svc.Begin(ctx, "vk")

	require.NoError(t, err)
	assert.NotEmpty(t, output.RedirectURL)
}

func TestOAuthService_Begin_UnknownProvider(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	mocks.registry.EXPECT().Lookup("github").Return(nil, domainerrors.ErrUnsupportedProvider)

	_, err := svc.Begin(ctx, "github")

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestOAuthService_Complete_ExistingLink(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Login: "alice", Email: "alice@example.com", Roles: entity.Roles{entity.RoleUser}, IsActive: true}
	grant := &service.TokenGrant{AccessToken: "provider-token"}
	profile := &service.ProviderProfile{UserID: "yandex-42", Email: "alice@example.com"}

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("yandex").Return(provider, nil)
	provider.EXPECT().RequiresPKCE().Return(true)
	provider.EXPECT().Provider().Return(entity.ProviderTypeYandex)

	mocks.flowStore.EXPECT().Get(ctx, "state-1").Return("verifier-1", nil)
	provider.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").Return(grant, nil)
	provider.EXPECT().FetchProfile(ctx, grant).Return(profile, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockOAuthLinkRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewOAuthLinkRepository().Return(mockLinkRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockLinkRepo.EXPECT().
				FindOAuthLinkByProviderUserID(ctx, entity.ProviderTypeYandex, "yandex-42").
				Return(&entity.OAuthLink{UserID: userID, Provider: entity.ProviderTypeYandex, ProviderUserID: "yandex-42"}, nil)
			mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	expectOpenSession(t, mocks, ctx, user, "callback-agent")

	output, err := svc.Complete(ctx, &usecase.CompleteOAuthInput{
		Provider:  "yandex",
		Code:      "code-1",
		State:     "state-1",
		UserAgent: "callback-agent",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestOAuthService_Complete_CreatesAccountAndLink(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	grant := &service.TokenGrant{AccessToken: "provider-token", UserID: "vk-7", Email: "fresh@example.com"}
	profile := &service.ProviderProfile{UserID: "vk-7", Email: "fresh@example.com", FirstName: "Fresh", LastName: "User"}

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("vk").Return(provider, nil)
	provider.EXPECT().RequiresPKCE().Return(false)
	provider.EXPECT().Provider().Return(entity.ProviderTypeVK)

	mocks.flowStore.EXPECT().Get(ctx, "state-2").Return("", nil)
	provider.EXPECT().ExchangeCode(ctx, "code-2", "").Return(grant, nil)
	provider.EXPECT().FetchProfile(ctx, grant).Return(profile, nil)

	mocks.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("generated-hash", nil)

	var createdUser *entity.User
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockOAuthLinkRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewOAuthLinkRepository().Return(mockLinkRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockLinkRepo.EXPECT().
				FindOAuthLinkByProviderUserID(ctx, entity.ProviderTypeVK, "vk-7").
				Return(nil, repository.ErrOAuthLinkNotFound)
			mockUserRepo.EXPECT().FindUserByEmail(ctx, "fresh@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				CreateUser(ctx, mock.MatchedBy(func(user *entity.User) bool {
					// Accounts created through a provider use the email as login.
					return user.Login == "fresh@example.com" &&
						user.Email == "fresh@example.com" &&
						user.PasswordHash == "generated-hash" &&
						user.IsActive
				})).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					createdUser = user
				}).
				Return(nil)
			mockLinkRepo.EXPECT().
				CreateOAuthLink(ctx, mock.MatchedBy(func(link *entity.OAuthLink) bool {
					return link.Provider == entity.ProviderTypeVK && link.ProviderUserID == "vk-7"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	// The link record lands in history before the login entry of the new session.
	mocks.historyRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.Action == entity.LinkAction(entity.ProviderTypeVK)
	})).Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewDeviceRepository().Return(mockDeviceRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockDeviceRepo.EXPECT().FindDeviceByUserAndAgent(ctx, createdUser.ID, "callback-agent").Return(nil, repository.ErrDeviceNotFound)
			mockDeviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)
			mocks.codec.EXPECT().IssueAccessToken("fresh@example.com", mock.AnythingOfType("uuid.UUID"), createdUser.Roles).Return("access-token", nil)
			mocks.codec.EXPECT().IssueRefreshToken("fresh@example.com", mock.AnythingOfType("uuid.UUID")).Return("refresh-token", nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokensForDevice(ctx, createdUser.ID, mock.AnythingOfType("uuid.UUID")).Return(nil)
			mockRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	mocks.historyRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.Action == entity.ActionLogin
	})).Return(nil)

	output, err := svc.Complete(ctx, &usecase.CompleteOAuthInput{
		Provider:  "vk",
		Code:      "code-2",
		State:     "state-2",
		UserAgent: "callback-agent",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestOAuthService_Complete_MissingCode(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("yandex").Return(provider, nil)

	_, err := svc.Complete(ctx, &usecase.CompleteOAuthInput{Provider: "yandex", State: "state-1"})

	assert.ErrorIs(t, err, domainerrors.ErrMissingAuthorizationCode)
}

func TestOAuthService_Complete_UnknownState(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("yandex").Return(provider, nil)
	provider.EXPECT().RequiresPKCE().Return(true)
	mocks.flowStore.EXPECT().Get(ctx, "forged-state").Return("", cache.ErrCacheMiss)

	_, err := svc.Complete(ctx, &usecase.CompleteOAuthInput{
		Provider: "yandex",
		Code:     "code-1",
		State:    "forged-state",
	})

	assert.ErrorIs(t, err, domainerrors.ErrProviderError)
}

func TestOAuthService_Complete_ProviderCarriedError(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("yandex").Return(provider, nil)

	_, err := svc.Complete(ctx, &usecase.CompleteOAuthInput{
		Provider:      "yandex",
		ProviderError: "access_denied",
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROVIDER_ERROR", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "access_denied")
}

func TestOAuthService_Complete_ExpiredStateToleratedWithoutPKCE(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Login: "bob", Email: "bob@example.com", Roles: entity.Roles{entity.RoleUser}, IsActive: true}
	grant := &service.TokenGrant{AccessToken: "provider-token", UserID: "vk-9"}
	profile := &service.ProviderProfile{UserID: "vk-9", Email: "bob@example.com"}

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("vk").Return(provider, nil)
	provider.EXPECT().RequiresPKCE().Return(false)
	provider.EXPECT().Provider().Return(entity.ProviderTypeVK)

	mocks.flowStore.EXPECT().Get(ctx, "gone-state").Return("", cache.ErrCacheMiss)
	provider.EXPECT().ExchangeCode(ctx, "code-3", "").Return(grant, nil)
	provider.EXPECT().FetchProfile(ctx, grant).Return(profile, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockOAuthLinkRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewOAuthLinkRepository().Return(mockLinkRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockLinkRepo.EXPECT().
				FindOAuthLinkByProviderUserID(ctx, entity.ProviderTypeVK, "vk-9").
				Return(&entity.OAuthLink{UserID: userID, Provider: entity.ProviderTypeVK, ProviderUserID: "vk-9"}, nil)
			mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	expectOpenSession(t, mocks, ctx, user, "callback-agent")

	output, err := svc.Complete(ctx, &usecase.CompleteOAuthInput{
		Provider:  "vk",
		Code:      "code-3",
		State:     "gone-state",
		UserAgent: "callback-agent",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestOAuthService_Complete_LinkToAccount(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	callerID := uuid.New()
	grant := &service.TokenGrant{AccessToken: "provider-token"}
	profile := &service.ProviderProfile{UserID: "yandex-42", Email: "alice@example.com"}

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("yandex").Return(provider, nil)
	provider.EXPECT().RequiresPKCE().Return(true)
	provider.EXPECT().Provider().Return(entity.ProviderTypeYandex)

	mocks.flowStore.EXPECT().Get(ctx, "state-1").Return("verifier-1", nil)
	provider.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").Return(grant, nil)
	provider.EXPECT().FetchProfile(ctx, grant).Return(profile, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockOAuthLinkRepository(t)

			mockFactory.EXPECT().NewOAuthLinkRepository().Return(mockLinkRepo)
			mockLinkRepo.EXPECT().
				FindOAuthLinkByProviderUserID(ctx, entity.ProviderTypeYandex, "yandex-42").
				Return(nil, repository.ErrOAuthLinkNotFound)
			mockLinkRepo.EXPECT().
				CreateOAuthLink(ctx, mock.MatchedBy(func(link *entity.OAuthLink) bool {
					return link.UserID == callerID && link.ProviderUserID == "yandex-42"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	mocks.historyRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.UserID == callerID && entry.Action == entity.LinkAction(entity.ProviderTypeYandex)
	})).Return(nil)

	output, err := svc.Complete(ctx, &usecase.CompleteOAuthInput{
		Provider: "yandex",
		Code:     "code-1",
		State:    "state-1",
		UserID:   callerID,
	})

	require.NoError(t, err)
	assert.True(t, output.Linked)
	assert.Empty(t, output.AccessToken)
}

func TestOAuthService_Complete_LinkConflict(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()

	callerID := uuid.New()
	otherID := uuid.New()
	grant := &service.TokenGrant{AccessToken: "provider-token"}
	profile := &service.ProviderProfile{UserID: "yandex-42", Email: "alice@example.com"}

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("yandex").Return(provider, nil)
	provider.EXPECT().RequiresPKCE().Return(true)
	provider.EXPECT().Provider().Return(entity.ProviderTypeYandex)

	mocks.flowStore.EXPECT().Get(ctx, "state-1").Return("verifier-1", nil)
	provider.EXPECT().ExchangeCode(ctx, "code-1", "verifier-1").Return(grant, nil)
	provider.EXPECT().FetchProfile(ctx, grant).Return(profile, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockOAuthLinkRepository(t)

			mockFactory.EXPECT().NewOAuthLinkRepository().Return(mockLinkRepo)
			mockLinkRepo.EXPECT().
				FindOAuthLinkByProviderUserID(ctx, entity.ProviderTypeYandex, "yandex-42").
				Return(&entity.OAuthLink{UserID: otherID, Provider: entity.ProviderTypeYandex, ProviderUserID: "yandex-42"}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrOAuthAccountAlreadyLinked).
		Once()

	_, err := svc.Complete(ctx, &usecase.CompleteOAuthInput{
		Provider: "yandex",
		Code:     "code-1",
		State:    "state-1",
		UserID:   callerID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthAccountAlreadyLinked)
	mocks.historyRepo.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
}

func TestOAuthService_Unlink_Success(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("yandex").Return(provider, nil)
	provider.EXPECT().Provider().Return(entity.ProviderTypeYandex)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockOAuthLinkRepository(t)

			mockFactory.EXPECT().NewOAuthLinkRepository().Return(mockLinkRepo)
			mockLinkRepo.EXPECT().DeleteOAuthLinkByUserAndProvider(ctx, userID, entity.ProviderTypeYandex).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	mocks.historyRepo.EXPECT().AppendHistory(ctx, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.UserID == userID && entry.Action == entity.UnlinkAction(entity.ProviderTypeYandex)
	})).Return(nil)

	err := svc.Unlink(ctx, userID, "yandex")

	require.NoError(t, err)
}

func TestOAuthService_Unlink_NotLinked(t *testing.T) {
	svc, mocks := newOAuthServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	provider := mockService.NewMockOAuthProvider(t)
	mocks.registry.EXPECT().Lookup("vk").Return(provider, nil)
	provider.EXPECT().Provider().Return(entity.ProviderTypeVK)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLinkRepo := mockRepo.NewMockOAuthLinkRepository(t)

			mockFactory.EXPECT().NewOAuthLinkRepository().Return(mockLinkRepo)
			mockLinkRepo.EXPECT().DeleteOAuthLinkByUserAndProvider(ctx, userID, entity.ProviderTypeVK).Return(repository.ErrOAuthLinkNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrOAuthAccountNotLinked)

	err := svc.Unlink(ctx, userID, "vk")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthAccountNotLinked)
}

func TestPKCE_CodeChallengeS256(t *testing.T) {
	// RFC 7636 appendix B reference pair.
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
	challenge := codeChallengeS256(verifier)

	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", challenge)
	assert.NotContains(t, challenge, "=")

	escaped := url.QueryEscape(challenge)
	assert.Equal(t, challenge, escaped)
}

func TestPKCE_GenerateCodeVerifierBounds(t *testing.T) {
	for i := 0; i < 32; i++ {
		verifier, err := generateCodeVerifier()

		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(verifier), 43)
		assert.LessOrEqual(t, len(verifier), 128)
	}
}

func TestGeneratePassword(t *testing.T) {
	password, err := generatePassword(20)

	require.NoError(t, err)
	assert.Len(t, password, 20)

	other, err := generatePassword(20)
	require.NoError(t, err)
	assert.NotEqual(t, password, other)
}
