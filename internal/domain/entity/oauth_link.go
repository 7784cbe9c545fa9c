// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names an external identity provider.
type ProviderType string

const (
	// ProviderTypeYandex is the Yandex OAuth provider.
	ProviderTypeYandex ProviderType = "yandex"
	// ProviderTypeVK is the VK OAuth provider.
	ProviderTypeVK ProviderType = "vk"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// OAuthLink ties a local user account to an identity at an external provider.
// The (provider, provider user id) pair is globally unique; a user holds at
// most one link per provider.
type OAuthLink struct {
	ID             uuid.UUID    // The unique ID for this link record.
	UserID         uuid.UUID    // Links this provider identity to the User it belongs to.
	Provider       ProviderType // The external provider, e.g. "yandex", "vk".
	ProviderUserID string       // The user's unique ID at the external provider.
	CreatedAt      time.Time    // When the provider identity was linked.
}
