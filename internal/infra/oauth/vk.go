package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"kinoauth/config"
	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	vkAuthorizeURL = "https://oauth.vk.com/authorize"
	vkTokenURL     = "https://oauth.vk.com/access_token"
	vkProfileURL   = "https://api.vk.com/method/account.getProfileInfo"

	vkAPIVersion = "5.199"
)

// VKProvider implements the plain authorization code flow against VK OAuth.
// VK does not support PKCE, so the flow relies on the state parameter alone.
type VKProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string

	authorizeURL string
	tokenURL     string
	profileURL   string
	client       *http.Client
}

// NewVKProvider creates a VK OAuth provider from configuration.
func NewVKProvider(cfg *config.Config) (service.OAuthProvider, error) {
	if cfg.OAuth == nil || cfg.OAuth.VK == nil {
		return nil, errors.New("oauth.vk configuration is required")
	}

	return &VKProvider{
		clientID:     cfg.OAuth.VK.ClientID,
		clientSecret: cfg.OAuth.VK.ClientSecret,
		redirectURI:  cfg.OAuth.VK.RedirectURI,
		authorizeURL: vkAuthorizeURL,
		tokenURL:     vkTokenURL,
		profileURL:   vkProfileURL,
		client:       &http.Client{Timeout: cfg.OAuth.RequestTimeout},
	}, nil
}

// Provider returns the provider type this implementation serves.
func (p *VKProvider) Provider() entity.ProviderType {
	return entity.ProviderTypeVK
}

// RequiresPKCE reports whether the provider's code flow uses PKCE.
func (p *VKProvider) RequiresPKCE() bool {
	return false
}

// AuthorizationURL constructs the VK authorization URL. The code challenge
// argument is ignored since VK has no PKCE support.
func (p *VKProvider) AuthorizationURL(state, _ string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", p.clientID)
	params.Set("redirect_uri", p.redirectURI)
	params.Set("scope", "email")
	params.Set("state", state)

	return p.authorizeURL + "?" + params.Encode()
}

// ExchangeCode exchanges an authorization code for an access token.
// VK returns the account ID and email together with the token, so the
// grant carries the identity for FetchProfile.
func (p *VKProvider) ExchangeCode(ctx context.Context, code, _ string) (*service.TokenGrant, error) {
	params := url.Values{}
	params.Set("client_id", p.clientID)
	params.Set("client_secret", p.clientSecret)
	params.Set("redirect_uri", p.redirectURI)
	params.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.tokenURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, domainerrors.NewProviderExchangeError(entity.ProviderTypeVK.String(), 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, domainerrors.NewProviderExchangeError(entity.ProviderTypeVK.String(), resp.StatusCode, string(body), nil)
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		Email       string `json:"email"`
		UserID      int64  `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	return &service.TokenGrant{
		AccessToken: tokenResponse.AccessToken,
		UserID:      strconv.FormatInt(tokenResponse.UserID, 10),
		Email:       tokenResponse.Email,
	}, nil
}

// FetchProfile retrieves the VK profile names behind a token grant. The
// account ID and email already arrived with the grant.
func (p *VKProvider) FetchProfile(ctx context.Context, grant *service.TokenGrant) (*service.ProviderProfile, error) {
	params := url.Values{}
	params.Set("v", vkAPIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.profileURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}

	req.Header.Set("Authorization", "Bearer "+grant.AccessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, domainerrors.NewProviderExchangeError(entity.ProviderTypeVK.String(), 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, domainerrors.NewProviderExchangeError(entity.ProviderTypeVK.String(), resp.StatusCode, string(body), nil)
	}

	var profileResponse struct {
		Response struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profileResponse); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile response")
	}

	return &service.ProviderProfile{
		UserID:    grant.UserID,
		Email:     grant.Email,
		FirstName: profileResponse.Response.FirstName,
		LastName:  profileResponse.Response.LastName,
	}, nil
}
