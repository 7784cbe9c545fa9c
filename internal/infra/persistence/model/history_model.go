package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryModel is the GORM-specific struct for the 'history' table.
// Rows are append-only; nothing updates or deletes them.
type HistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null"`
	Action    string    `gorm:"type:varchar(100);not null"`
	IP        string    `gorm:"type:varchar(45)"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (HistoryModel) TableName() string {
	return "history"
}
