package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/services/payment/handler/http"
)

// Handler coordinates the HTTP handlers of the payment service
type Handler struct {
	paymentHandler *http.PaymentHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(paymentHandler *http.PaymentHandler) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
	}
}

// RegisterRoutes mounts the payment routes on api. The callback is public
// and authenticated by its signature; initiateLimit guards new top-ups.
func (h *Handler) RegisterRoutes(api *echo.Group, auth echo.MiddlewareFunc, initiateLimit ...echo.MiddlewareFunc) {
	paymentGroup := api.Group("/payment")

	// Gateway callback (no bearer token)
	paymentGroup.POST("/callback", h.paymentHandler.Callback)

	// User routes
	paymentGroup.POST("/initiate", h.paymentHandler.Initiate, append([]echo.MiddlewareFunc{auth}, initiateLimit...)...)
	paymentGroup.GET("/status/:id", h.paymentHandler.Status, auth)
}
