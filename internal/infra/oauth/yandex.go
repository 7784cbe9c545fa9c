package oauth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"kinoauth/config"
	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	yandexAuthorizeURL = "https://oauth.yandex.ru/authorize"
	yandexTokenURL     = "https://oauth.yandex.ru/token"
	yandexProfileURL   = "https://login.yandex.ru/info"
)

// YandexProvider implements the authorization code flow with PKCE against Yandex OAuth.
type YandexProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string

	authorizeURL string
	tokenURL     string
	profileURL   string
	client       *http.Client
}

// NewYandexProvider creates a Yandex OAuth provider from configuration.
func NewYandexProvider(cfg *config.Config) (service.OAuthProvider, error) {
	if cfg.OAuth == nil || cfg.OAuth.Yandex == nil {
		return nil, errors.New("oauth.yandex configuration is required")
	}

	return &YandexProvider{
		clientID:     cfg.OAuth.Yandex.ClientID,
		clientSecret: cfg.OAuth.Yandex.ClientSecret,
		redirectURI:  cfg.OAuth.Yandex.RedirectURI,
		authorizeURL: yandexAuthorizeURL,
		tokenURL:     yandexTokenURL,
		profileURL:   yandexProfileURL,
		client:       &http.Client{Timeout: cfg.OAuth.RequestTimeout},
	}, nil
}

// Provider returns the provider type this implementation serves.
func (p *YandexProvider) Provider() entity.ProviderType {
	return entity.ProviderTypeYandex
}

// RequiresPKCE reports whether the provider's code flow uses PKCE.
func (p *YandexProvider) RequiresPKCE() bool {
	return true
}

// AuthorizationURL constructs the Yandex authorization URL with the S256 code challenge.
func (p *YandexProvider) AuthorizationURL(state, codeChallenge string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", p.clientID)
	params.Set("redirect_uri", p.redirectURI)
	params.Set("state", state)
	params.Set("code_challenge", codeChallenge)
	params.Set("code_challenge_method", "S256")

	return p.authorizeURL + "?" + params.Encode()
}

// ExchangeCode exchanges an authorization code for an access token.
// Yandex expects client credentials via HTTP Basic auth and the PKCE
// verifier in the form body.
func (p *YandexProvider) ExchangeCode(ctx context.Context, code, codeVerifier string) (*service.TokenGrant, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("code_verifier", codeVerifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+basicAuth(p.clientID, p.clientSecret))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, domainerrors.NewProviderExchangeError(entity.ProviderTypeYandex.String(), 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, domainerrors.NewProviderExchangeError(entity.ProviderTypeYandex.String(), resp.StatusCode, string(body), nil)
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	return &service.TokenGrant{AccessToken: tokenResponse.AccessToken}, nil
}

// FetchProfile retrieves the Yandex account profile behind an access token.
func (p *YandexProvider) FetchProfile(ctx context.Context, grant *service.TokenGrant) (*service.ProviderProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}

	// Yandex uses its own "OAuth" scheme instead of "Bearer".
	req.Header.Set("Authorization", "OAuth "+grant.AccessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, domainerrors.NewProviderExchangeError(entity.ProviderTypeYandex.String(), 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, domainerrors.NewProviderExchangeError(entity.ProviderTypeYandex.String(), resp.StatusCode, string(body), nil)
	}

	var profile struct {
		ID           string `json:"id"`
		DefaultEmail string `json:"default_email"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile response")
	}

	return &service.ProviderProfile{
		UserID:    profile.ID,
		Email:     profile.DefaultEmail,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}, nil
}

func basicAuth(clientID, clientSecret string) string {
	return base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
}
