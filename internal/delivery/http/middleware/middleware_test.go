package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kinoauth/internal/domain/entity"
	domainerrors "kinoauth/internal/domain/errors"
	mockUsecase "kinoauth/internal/mocks/usecase"
	"kinoauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEchoContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/devices", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	userID := uuid.New()
	deviceID := uuid.New()
	uc.EXPECT().
		Authenticate(mock.Anything, "live-access").
		Return(&usecase.AuthenticatedUser{
			User: &entity.User{
				ID:    userID,
				Login: "alice",
				Roles: entity.Roles{entity.RoleUser},
			},
			DeviceID: deviceID,
		}, nil)

	c, rec := newEchoContext("Bearer live-access")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, deviceID, c.Get(ContextKeyDeviceID))
	assert.Equal(t, []string{"user"}, c.Get(ContextKeyRoles))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	c, rec := newEchoContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_AUTHORIZATION")

	uc.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	c, rec := newEchoContext("Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_AUTHORIZATION")
}

func TestAuthMiddleware_Authenticate_RevokedToken(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	uc.EXPECT().
		Authenticate(mock.Anything, "revoked-access").
		Return(nil, domainerrors.ErrTokenRevoked)

	c, _ := newEchoContext("Bearer revoked-access")

	err := m.Authenticate(okHandler)(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRevoked)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)

	newCtx := func(roles any) (echo.Context, *httptest.ResponseRecorder) {
		c, rec := newEchoContext("")
		if roles != nil {
			c.Set(ContextKeyRoles, roles)
		}

		return c, rec
	}

	c, rec := newCtx([]string{"user", "admin"})
	require.NoError(t, m.RequireRole("admin")(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newCtx([]string{"user"})
	require.NoError(t, m.RequireRole("admin")(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Authenticate never ran, so no role info is on the context.
	c, rec = newCtx(nil)
	require.NoError(t, m.RequireRole("admin")(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewErrorMiddleware(logger)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantInBody string
	}{
		{
			name:       "app error",
			err:        domainerrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantInBody: "INVALID_CREDENTIALS",
		},
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrUserAlreadyExists, "register"),
			wantStatus: http.StatusConflict,
			wantInBody: "USER_ALREADY_EXISTS",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusBadRequest, "binding failed"),
			wantStatus: http.StatusBadRequest,
			wantInBody: "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantInBody: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newEchoContext("")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantInBody)
		})
	}
}
