package postgres

import (
	"context"

	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/repository"
	"kinoauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// historyRepository implements the domain.HistoryRepository interface.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

// AppendHistory persists a new activity entry.
func (repo *historyRepository) AppendHistory(ctx context.Context, entry *entity.HistoryEntry) error {
	entryM := fromHistoryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append history entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindHistoryByUserID retrieves a page of a user's activity entries, newest first.
func (repo *historyRepository) FindHistoryByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.HistoryEntry, error) {
	var entryModels []*model.HistoryModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*entity.HistoryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toHistoryDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toHistoryDomain converts a GORM HistoryModel to a domain HistoryEntry entity.
func toHistoryDomain(data *model.HistoryModel) *entity.HistoryEntry {
	if data == nil {
		return nil
	}

	return &entity.HistoryEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		DeviceID:  data.DeviceID,
		Action:    data.Action,
		IP:        data.IP,
		CreatedAt: data.CreatedAt,
	}
}

// fromHistoryDomain converts a domain HistoryEntry entity to a GORM HistoryModel.
func fromHistoryDomain(data *entity.HistoryEntry) *model.HistoryModel {
	if data == nil {
		return nil
	}

	return &model.HistoryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		DeviceID:  data.DeviceID,
		Action:    data.Action,
		IP:        data.IP,
		CreatedAt: data.CreatedAt,
	}
}
