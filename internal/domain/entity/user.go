// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the root aggregate of the authentication service. Devices, refresh
// tokens, oauth links and history entries are all owned by a User and removed
// with it.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Login        string    // Unique login used as the token subject.
	Email        string    // The user's primary contact email, unique across the service.
	PasswordHash string    // bcrypt hash of the user's password.
	FirstName    string
	LastName     string
	Roles        Roles     // Role labels carried into issued access tokens.
	IsActive     bool      // Inactive users cannot authenticate.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
