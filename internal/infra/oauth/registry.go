package oauth

import (
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/service"

	"go.uber.org/fx"
)

// Registry resolves a provider implementation by its name.
type Registry struct {
	providers map[string]service.OAuthProvider
}

// RegistryParams defines the required parameters
type RegistryParams struct {
	fx.In

	Providers []service.OAuthProvider `group:"oauth_providers"`
}

// NewRegistry builds the registry from all registered provider implementations.
func NewRegistry(params RegistryParams) service.ProviderRegistry {
	providers := make(map[string]service.OAuthProvider, len(params.Providers))
	for _, p := range params.Providers {
		providers[p.Provider().String()] = p
	}

	return &Registry{providers: providers}
}

// Lookup returns the provider registered under name, or ErrUnsupportedProvider.
func (r *Registry) Lookup(name string) (service.OAuthProvider, error) {
	provider, ok := r.providers[name]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider
	}

	return provider, nil
}
