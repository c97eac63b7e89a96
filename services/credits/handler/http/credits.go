package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/middleware"
	"github.com/piresc/lotaya/internal/pkg/models"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
	"github.com/piresc/lotaya/internal/utils"
	"github.com/piresc/lotaya/services/credits"
)

// CreditsHandler handles balance mutations requested by clients
type CreditsHandler struct {
	creditsUC credits.CreditsUC
}

// NewCreditsHandler creates a new credits handler
func NewCreditsHandler(creditsUC credits.CreditsUC) *CreditsHandler {
	return &CreditsHandler{
		creditsUC: creditsUC,
	}
}

// Deduct handles POST /credits/deduct
func (h *CreditsHandler) Deduct(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Credits.Deduct")

	var req models.DeductRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for deduction",
			logger.ErrorField(err),
			logger.String("endpoint", "Deduct"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Amount <= 0 {
		return utils.DomainErrorResponse(c, models.ErrInvalidAmount, "")
	}
	if strings.TrimSpace(req.Service) == "" {
		return utils.BadRequestResponse(c, "Service is required")
	}

	uid := middleware.UserID(c)
	ctx := c.Request().Context()

	user, err := h.creditsUC.ResolveUser(ctx, uid)
	if err != nil {
		logUnexpected(err, "Failed to resolve user", uid)
		return utils.DomainErrorResponse(c, err, "Failed to deduct credits")
	}

	result, err := h.creditsUC.Deduct(ctx, user.ID, req.Amount, req.Service, req.Description)
	if err != nil {
		logUnexpected(err, "Credit deduction error", uid)
		return utils.DomainErrorResponse(c, err, "Failed to deduct credits")
	}

	nrpkg.AddTransactionAttribute(txn, "credits.amount", req.Amount)
	nrpkg.AddTransactionAttribute(txn, "credits.service", req.Service)

	return utils.SuccessResponse(c, http.StatusOK, "Credits deducted successfully", models.DeductResponse{
		RemainingCredits: result.Balance,
		TransactionID:    result.Transaction.ID,
	})
}
