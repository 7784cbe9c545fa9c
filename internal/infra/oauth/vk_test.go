package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"kinoauth/config"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/entity"
	"kinoauth/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vkConfigForTest() *config.Config {
	return &config.Config{
		OAuth: &config.OAuthConfig{
			VK: &config.OAuthProviderConfig{
				ClientID:     "vk-client",
				ClientSecret: "vk-secret",
				RedirectURI:  "https://app.example/oauth/vk/code",
			},
		},
	}
}

func newVKProviderForTest(t *testing.T) *VKProvider {
	t.Helper()

	provider, err := NewVKProvider(vkConfigForTest())
	require.NoError(t, err)

	return provider.(*VKProvider)
}

func TestVKProvider_MissingConfig(t *testing.T) {
	_, err := NewVKProvider(&config.Config{})

	require.Error(t, err)

	_, err = NewVKProvider(&config.Config{OAuth: &config.OAuthConfig{}})

	require.Error(t, err)
}

func TestVKProvider_AuthorizationURL(t *testing.T) {
	provider := newVKProviderForTest(t)

	raw := provider.AuthorizationURL("state-456", "ignored-challenge")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "vk-client", query.Get("client_id"))
	assert.Equal(t, "email", query.Get("scope"))
	assert.Equal(t, "state-456", query.Get("state"))
	assert.Empty(t, query.Get("code_challenge"))
}

func TestVKProvider_RequiresPKCE(t *testing.T) {
	provider := newVKProviderForTest(t)

	assert.False(t, provider.RequiresPKCE())
	assert.Equal(t, entity.ProviderTypeVK, provider.Provider())
}

func TestVKProvider_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)

		query := r.URL.Query()
		assert.Equal(t, "vk-client", query.Get("client_id"))
		assert.Equal(t, "vk-secret", query.Get("client_secret"))
		assert.Equal(t, "code-2", query.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"vk-token","expires_in":86400,"user_id":221485947,"email":"bob@example.com"}`))
	}))
	defer server.Close()

	provider := newVKProviderForTest(t)
	provider.tokenURL = server.URL

	grant, err := provider.ExchangeCode(context.Background(), "code-2", "")

	require.NoError(t, err)
	assert.Equal(t, "vk-token", grant.AccessToken)
	// VK delivers the identity with the token, not the profile call.
	assert.Equal(t, "221485947", grant.UserID)
	assert.Equal(t, "bob@example.com", grant.Email)
}

func TestVKProvider_ExchangeCode_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer server.Close()

	provider := newVKProviderForTest(t)
	provider.tokenURL = server.URL

	_, err := provider.ExchangeCode(context.Background(), "code-2", "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "invalid_client")
}

func TestVKProvider_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer vk-token", r.Header.Get("Authorization"))
		assert.Equal(t, "5.199", r.URL.Query().Get("v"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"first_name":"Bob","last_name":"Builder"}}`))
	}))
	defer server.Close()

	provider := newVKProviderForTest(t)
	provider.profileURL = server.URL

	grant := &service.TokenGrant{AccessToken: "vk-token", UserID: "221485947", Email: "bob@example.com"}
	profile, err := provider.FetchProfile(context.Background(), grant)

	require.NoError(t, err)
	assert.Equal(t, "221485947", profile.UserID)
	assert.Equal(t, "bob@example.com", profile.Email)
	assert.Equal(t, "Bob", profile.FirstName)
	assert.Equal(t, "Builder", profile.LastName)
}
