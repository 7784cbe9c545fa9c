package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	"kinoauth/internal/domain/repository"
	mockRepo "kinoauth/internal/mocks/repository"
	"kinoauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionServiceForTest(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockDeviceRepository, *mockRepo.MockHistoryRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	historyRepo := mockRepo.NewMockHistoryRepository(t)

	svc := NewSessionService(SessionServiceParams{
		TxManager:   txManager,
		DeviceRepo:  deviceRepo,
		HistoryRepo: historyRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, txManager, deviceRepo, historyRepo
}

func TestSessionService_ListDevices(t *testing.T) {
	svc, _, deviceRepo, _ := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, UserAgent: "laptop-agent"},
		{ID: uuid.New(), UserID: userID, UserAgent: "phone-agent"},
	}

	deviceRepo.EXPECT().FindDevicesByUserID(ctx, userID).Return(devices, nil)

	got, err := svc.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "laptop-agent", got[0].UserAgent)
}

func TestSessionService_ListDevices_Error(t *testing.T) {
	svc, _, deviceRepo, _ := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindDevicesByUserID(ctx, userID).Return(nil, assert.AnError)

	_, err := svc.ListDevices(ctx, userID)

	assert.Error(t, err)
}

func TestSessionService_History_LimitHandling(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults applied", limit: 0, offset: 0, wantLimit: 20, wantOffset: 0},
		{name: "explicit values kept", limit: 50, offset: 10, wantLimit: 50, wantOffset: 10},
		{name: "limit capped", limit: 1000, offset: 0, wantLimit: 100, wantOffset: 0},
		{name: "negative values normalized", limit: -5, offset: -3, wantLimit: 20, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, historyRepo := newSessionServiceForTest(t)
			ctx := context.Background()
			userID := uuid.New()

			entries := []*entity.HistoryEntry{
				{ID: uuid.New(), UserID: userID, Action: entity.ActionLogin, CreatedAt: time.Now()},
			}

			historyRepo.EXPECT().FindHistoryByUserID(ctx, userID, tt.wantLimit, tt.wantOffset).Return(entries, nil)

			got, err := svc.History(ctx, &usecase.HistoryInput{
				UserID: userID,
				Limit:  tt.limit,
				Offset: tt.offset,
			})

			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

func TestSessionService_GetDevice(t *testing.T) {
	svc, _, deviceRepo, _ := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	device := &entity.Device{ID: deviceID, UserID: userID, UserAgent: "laptop-agent"}

	deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)

	got, err := svc.GetDevice(ctx, userID, deviceID)

	require.NoError(t, err)
	assert.Equal(t, deviceID, got.ID)
	assert.Equal(t, "laptop-agent", got.UserAgent)
}

func TestSessionService_GetDevice_NotFound(t *testing.T) {
	svc, _, deviceRepo, _ := newSessionServiceForTest(t)
	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	_, err := svc.GetDevice(ctx, uuid.New(), deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestSessionService_GetDevice_OtherUsersDevice(t *testing.T) {
	svc, _, deviceRepo, _ := newSessionServiceForTest(t)
	ctx := context.Background()
	deviceID := uuid.New()

	device := &entity.Device{ID: deviceID, UserID: uuid.New(), UserAgent: "phone-agent"}

	deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(device, nil)

	_, err := svc.GetDevice(ctx, uuid.New(), deviceID)

	// Reads the same as an absent device.
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestSessionService_UpdateProfile(t *testing.T) {
	svc, txManager, _, _ := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(&entity.User{
				ID:        userID,
				Login:     "alice",
				FirstName: "Old",
				LastName:  "Surname",
			}, nil)
			mockUserRepo.EXPECT().
				UpdateUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
					return u.FirstName == "New" && u.LastName == "Surname"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	firstName := "New"
	got, err := svc.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:    userID,
		FirstName: &firstName,
	})

	require.NoError(t, err)
	assert.Equal(t, "New", got.FirstName)
	// An omitted field keeps its stored value.
	assert.Equal(t, "Surname", got.LastName)
}

func TestSessionService_UpdateProfile_UserNotFound(t *testing.T) {
	svc, txManager, _, _ := newSessionServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserNotFound)

	lastName := "Whoever"
	_, err := svc.UpdateProfile(ctx, &usecase.UpdateProfileInput{
		UserID:   userID,
		LastName: &lastName,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
