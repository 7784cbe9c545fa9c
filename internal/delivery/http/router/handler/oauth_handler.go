package handler

import (
	"log/slog"
	"net/http"

	"kinoauth/internal/delivery/http/middleware"
	"kinoauth/internal/delivery/http/response"
	"kinoauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler holds dependencies for provider sign-in handlers.
type OAuthHandler struct {
	uc     usecase.OAuthUsecase
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase, authUC usecase.AuthUsecase, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{uc: uc, authUC: authUC, logger: logger}
}

// Begin starts a provider flow and redirects the user to the provider.
func (h *OAuthHandler) Begin(c echo.Context) error {
	output, err := h.uc.Begin(c.Request().Context(), c.Param("provider"))
	if err != nil {
		return errors.WithStack(err)
	}

	// Frontends that cannot follow a redirect can ask for the URL instead.
	if c.QueryParam("redirect") == "false" {
		return response.Success(c, http.StatusOK, map[string]string{"redirect_url": output.RedirectURL}, "OAuth flow started")
	}

	return c.Redirect(http.StatusTemporaryRedirect, output.RedirectURL)
}

// Complete handles the provider callback. An anonymous call signs the user
// in; a call carrying a bearer access token links the provider account to the
// caller instead.
func (h *OAuthHandler) Complete(c echo.Context) error {
	input := &usecase.CompleteOAuthInput{
		Provider:      c.Param("provider"),
		Code:          c.QueryParam("code"),
		State:         c.QueryParam("state"),
		ProviderError: c.QueryParam("error"),
		UserAgent:     c.Request().UserAgent(),
		IP:            c.RealIP(),
	}

	if accessToken, ok := bearerToken(c); ok {
		authenticated, err := h.authUC.Authenticate(c.Request().Context(), accessToken)
		if err != nil {
			return errors.WithStack(err)
		}
		input.UserID = authenticated.User.ID
	}

	output, err := h.uc.Complete(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Linked {
		return response.Success(c, http.StatusOK, map[string]string{"message": "Provider account linked"}, "Link successful")
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "bearer",
	}, "OAuth login successful")
}

// Unlink removes the authenticated user's link to a provider account.
func (h *OAuthHandler) Unlink(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.Unlink(c.Request().Context(), userID, c.Param("provider")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Provider account unlinked"}, "Unlink successful")
}
