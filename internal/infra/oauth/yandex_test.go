package oauth

import (
	"context"
	"encoding/base64"
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

func yandexConfigForTest() *config.Config {
	return &config.Config{
		OAuth: &config.OAuthConfig{
			Yandex: &config.OAuthProviderConfig{
				ClientID:     "yandex-client",
				ClientSecret: "yandex-secret",
				RedirectURI:  "https://app.example/oauth/yandex/code",
			},
		},
	}
}

func newYandexProviderForTest(t *testing.T) *YandexProvider {
	t.Helper()

	provider, err := NewYandexProvider(yandexConfigForTest())
	require.NoError(t, err)

	return provider.(*YandexProvider)
}

func TestYandexProvider_MissingConfig(t *testing.T) {
	_, err := NewYandexProvider(&config.Config{})

	require.Error(t, err)

	_, err = NewYandexProvider(&config.Config{OAuth: &config.OAuthConfig{}})

	require.Error(t, err)
}

func TestYandexProvider_AuthorizationURL(t *testing.T) {
	provider := newYandexProviderForTest(t)

	raw := provider.AuthorizationURL("state-123", "challenge-xyz")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "yandex-client", query.Get("client_id"))
	assert.Equal(t, "https://app.example/oauth/yandex/code", query.Get("redirect_uri"))
	assert.Equal(t, "state-123", query.Get("state"))
	assert.Equal(t, "challenge-xyz", query.Get("code_challenge"))
	assert.Equal(t, "S256", query.Get("code_challenge_method"))
}

func TestYandexProvider_RequiresPKCE(t *testing.T) {
	provider := newYandexProviderForTest(t)

	assert.True(t, provider.RequiresPKCE())
	assert.Equal(t, entity.ProviderTypeYandex, provider.Provider())
}

func TestYandexProvider_ExchangeCode(t *testing.T) {
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("yandex-client:yandex-secret"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "code-1", r.PostForm.Get("code"))
		assert.Equal(t, "verifier-1", r.PostForm.Get("code_verifier"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"ya-token","expires_in":3600}`))
	}))
	defer server.Close()

	provider := newYandexProviderForTest(t)
	provider.tokenURL = server.URL

	grant, err := provider.ExchangeCode(context.Background(), "code-1", "verifier-1")

	require.NoError(t, err)
	assert.Equal(t, "ya-token", grant.AccessToken)
}

func TestYandexProvider_ExchangeCode_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	provider := newYandexProviderForTest(t)
	provider.tokenURL = server.URL

	_, err := provider.ExchangeCode(context.Background(), "bad-code", "verifier-1")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "invalid_grant")
}

func TestYandexProvider_FetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth ya-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1000034426","default_email":"alice@yandex.ru","first_name":"Alice","last_name":"Liddell"}`))
	}))
	defer server.Close()

	provider := newYandexProviderForTest(t)
	provider.profileURL = server.URL

	profile, err := provider.FetchProfile(context.Background(), &service.TokenGrant{AccessToken: "ya-token"})

	require.NoError(t, err)
	assert.Equal(t, "1000034426", profile.UserID)
	assert.Equal(t, "alice@yandex.ru", profile.Email)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Equal(t, "Liddell", profile.LastName)
}
