package middleware

import (
	"slices"
	"strings"

	"kinoauth/internal/delivery/http/response"
	"kinoauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUser     = "user"
	ContextKeyUserID   = "userID"
	ContextKeyDeviceID = "deviceID"
	ContextKeyRoles    = "roles"
)

// AuthMiddleware provides middleware for access token authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer access token. The check covers the
// signature, expiry and the revocation denylist, so a logged-out token is
// rejected even before its expiry.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_AUTHORIZATION", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_AUTHORIZATION", "Invalid token format, must be Bearer token")
		}

		authenticated, err := m.authUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUser, authenticated.User)
		c.Set(ContextKeyUserID, authenticated.User.ID)
		c.Set(ContextKeyDeviceID, authenticated.DeviceID)
		c.Set(ContextKeyRoles, authenticated.User.Roles.ToStrings())

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return response.Error(c, 403, "FORBIDDEN", "Permission denied: role information missing", "")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Error(c, 403, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role", "")
			}

			return next(c)
		}
	}
}
