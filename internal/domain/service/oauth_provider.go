package service

import (
	"context"

	"kinoauth/internal/domain/entity"
)

// ProviderProfile represents user information fetched from an OAuth provider.
type ProviderProfile struct {
	UserID    string // Provider-specific user ID
	Email     string // User's email address
	FirstName string // User's first name, if the provider exposes it
	LastName  string // User's last name, if the provider exposes it
}

// TokenGrant is the result of exchanging an authorization code.
// Some providers return the account identity together with the token,
// others only expose it through the profile endpoint.
type TokenGrant struct {
	AccessToken string
	UserID      string
	Email       string
}

// ProviderRegistry resolves a provider implementation by its wire name.
type ProviderRegistry interface {
	// Lookup returns the provider registered under name.
	Lookup(name string) (OAuthProvider, error)
}

// OAuthProvider defines the interface for the authorization code flow against
// one external provider. Implementations own their endpoint URLs, credentials
// and PKCE requirements, so use cases stay provider-agnostic.
type OAuthProvider interface {
	// Provider returns the provider type this implementation serves.
	Provider() entity.ProviderType

	// RequiresPKCE reports whether the provider's code flow uses PKCE.
	RequiresPKCE() bool

	// AuthorizationURL builds the URL the user is redirected to. The code
	// challenge is empty for providers without PKCE.
	AuthorizationURL(state, codeChallenge string) string

	// ExchangeCode trades an authorization code for a provider access token.
	// The verifier is empty for providers without PKCE.
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*TokenGrant, error)

	// FetchProfile retrieves the account profile behind a token grant.
	FetchProfile(ctx context.Context, grant *TokenGrant) (*ProviderProfile, error)
}
