package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel is the GORM-specific struct for the 'refresh_tokens' table.
// The raw token string is stored so rotation can match it exactly.
type RefreshTokenModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Token    string    `gorm:"type:text;unique;not null"`
	IssuedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
