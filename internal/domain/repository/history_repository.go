package repository

import (
	"context"

	"kinoauth/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryRepository defines the interface for the append-only account activity log.
type HistoryRepository interface {
	// AppendHistory persists a new activity entry. Entries are never updated
	// or deleted afterwards.
	AppendHistory(ctx context.Context, entry *entity.HistoryEntry) error

	// FindHistoryByUserID retrieves a page of a user's activity entries,
	// newest first.
	FindHistoryByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.HistoryEntry, error)
}
