package model

import (
	"time"

	"github.com/google/uuid"
)

// OAuthLinkModel is the GORM-specific struct for the 'oauth_links' table.
// One provider account links to at most one user, and a user holds at most
// one link per provider.
type OAuthLinkModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_oauth_links_user_provider"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_oauth_links_user_provider;uniqueIndex:idx_oauth_links_provider_account"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_oauth_links_provider_account"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthLinkModel) TableName() string {
	return "oauth_links"
}
