package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/models"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
	"github.com/piresc/lotaya/internal/utils"
	"github.com/piresc/lotaya/services/credits"
)

// AuthHandler handles user registration
type AuthHandler struct {
	creditsUC credits.CreditsUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(creditsUC credits.CreditsUC) *AuthHandler {
	return &AuthHandler{
		creditsUC: creditsUC,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Auth.Register")

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration",
			logger.ErrorField(err),
			logger.String("endpoint", "Register"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.FirebaseUID) == "" {
		return utils.BadRequestResponse(c, "Name and firebase_uid are required")
	}
	if !strings.Contains(req.Email, "@") {
		return utils.BadRequestResponse(c, "A valid email is required")
	}

	user, err := h.creditsUC.RegisterUser(c.Request().Context(), &req)
	if err != nil {
		logUnexpected(err, "Registration error", req.FirebaseUID)
		return utils.DomainErrorResponse(c, err, "Registration failed")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", models.RegisterResponse{
		UserID:  user.ID,
		Credits: user.Credits,
	})
}
