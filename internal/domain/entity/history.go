// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// History action labels. Provider-qualified labels are built with
// LinkAction/UnlinkAction.
const (
	ActionLogin   = "login"
	ActionRefresh = "refresh"
	ActionLogout  = "logout"
)

// LinkAction returns the audit label for linking a provider account.
func LinkAction(provider ProviderType) string {
	return "link " + provider.String() + " account"
}

// UnlinkAction returns the audit label for unlinking a provider account.
func UnlinkAction(provider ProviderType) string {
	return "unlink " + provider.String() + " account"
}

// HistoryEntry is an append-only audit row recording an authentication-related
// action for a user on a device. Entries are never mutated or deleted.
type HistoryEntry struct {
	ID        uuid.UUID // The unique ID for this audit row.
	UserID    uuid.UUID // The user the action belongs to.
	DeviceID  uuid.UUID // The device the action originated from.
	Action    string    // Action label, e.g. "login", "logout".
	IP        string    // Origin IP as reported by the boundary layer.
	CreatedAt time.Time
}
