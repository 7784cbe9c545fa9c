// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	deliverymiddleware "kinoauth/internal/delivery/middleware"

	"kinoauth/internal/delivery/http/middleware"
	"kinoauth/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	OAuthHandler   *handler.OAuthHandler
	SessionHandler *handler.SessionHandler
	AuthMiddleware *middleware.AuthMiddleware
	RequestID      *deliverymiddleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	oauthHandler   *handler.OAuthHandler
	sessionHandler *handler.SessionHandler
	authMiddleware *middleware.AuthMiddleware
	requestID      *deliverymiddleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		oauthHandler:   params.OAuthHandler,
		sessionHandler: params.SessionHandler,
		authMiddleware: params.AuthMiddleware,
		requestID:      params.RequestID,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential and session lifecycle routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Provider sign-in routes
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/:provider", r.oauthHandler.Begin)
		oauthGroup.GET("/:provider/code", r.oauthHandler.Complete)
		oauthGroup.DELETE("/:provider", r.oauthHandler.Unlink, r.authMiddleware.Authenticate)
	}

	// Personal routes require authentication and a client request ID
	sessionGroup := e.Group("/sessions")
	sessionGroup.Use(r.requestID.Require)
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/devices", r.sessionHandler.ListDevices)
		sessionGroup.GET("/devices/:id", r.sessionHandler.GetDevice)
		sessionGroup.PATCH("/profile", r.sessionHandler.UpdateProfile)
		sessionGroup.GET("/history", r.sessionHandler.History)
	}
}
