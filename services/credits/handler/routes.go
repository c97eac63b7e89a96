package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/services/credits/handler/http"
)

// Handler coordinates the HTTP handlers of the credits service
type Handler struct {
	authHandler    *http.AuthHandler
	userHandler    *http.UserHandler
	creditsHandler *http.CreditsHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	creditsHandler *http.CreditsHandler,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		userHandler:    userHandler,
		creditsHandler: creditsHandler,
	}
}

// RegisterRoutes mounts the public and authenticated routes on api.
// registerLimit guards registration, auth verifies bearer tokens.
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc, registerLimit ...echo.MiddlewareFunc) {
	// Public routes (no authentication required)
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register, registerLimit...)

	// User routes
	userGroup := api.Group("/user", auth)
	userGroup.GET("/profile", h.userHandler.GetProfile)
	userGroup.GET("/transactions", h.userHandler.GetTransactions)

	// Credit routes
	creditsGroup := api.Group("/credits", auth)
	creditsGroup.POST("/deduct", h.creditsHandler.Deduct)
}
