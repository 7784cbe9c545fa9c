package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"kinoauth/internal/delivery/http/middleware"
	"kinoauth/internal/delivery/http/response"
	"kinoauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// deviceResponse is the public projection of a session device.
type deviceResponse struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// updateProfileRequest is the payload of PATCH /sessions/profile.
// Absent fields are left untouched.
type updateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
}

// historyEntryResponse is the public projection of an activity entry.
type historyEntryResponse struct {
	Action    string    `json:"action"`
	DeviceID  string    `json:"device_id,omitempty"`
	IP        string    `json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionHandler holds dependencies for session inspection handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

// ListDevices returns the devices the authenticated user has sessions on.
func (h *SessionHandler) ListDevices(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.uc.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]deviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, deviceResponse{
			ID:        d.ID.String(),
			UserAgent: d.UserAgent,
			CreatedAt: d.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out, "Devices retrieved successfully")
}

// GetDevice returns a single device belonging to the authenticated user.
func (h *SessionHandler) GetDevice(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Invalid device ID")
	}

	device, err := h.uc.GetDevice(c.Request().Context(), userID, deviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deviceResponse{
		ID:        device.ID.String(),
		UserAgent: device.UserAgent,
		CreatedAt: device.CreatedAt,
	}, "Device retrieved successfully")
}

// UpdateProfile applies a partial update to the authenticated user's profile.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userResponse{
		ID:        user.ID.String(),
		Login:     user.Login,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Roles:     user.Roles.ToStrings(),
	}, "Profile updated successfully")
}

// History returns a page of the authenticated user's account activity.
func (h *SessionHandler) History(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	entries, err := h.uc.History(c.Request().Context(), &usecase.HistoryInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		entry := historyEntryResponse{
			Action:    e.Action,
			IP:        e.IP,
			CreatedAt: e.CreatedAt,
		}
		if e.DeviceID != uuid.Nil {
			entry.DeviceID = e.DeviceID.String()
		}
		out = append(out, entry)
	}

	return response.Success(c, http.StatusOK, out, "History retrieved successfully")
}
