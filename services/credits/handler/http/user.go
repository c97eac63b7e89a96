package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/middleware"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
	"github.com/piresc/lotaya/internal/utils"
	"github.com/piresc/lotaya/services/credits"
)

// UserHandler handles HTTP requests for profile and history
type UserHandler struct {
	creditsUC credits.CreditsUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(creditsUC credits.CreditsUC) *UserHandler {
	return &UserHandler{
		creditsUC: creditsUC,
	}
}

// GetProfile handles GET /user/profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "User.GetProfile")

	uid := middleware.UserID(c)
	user, err := h.creditsUC.GetProfile(c.Request().Context(), uid)
	if err != nil {
		logUnexpected(err, "Failed to fetch profile", uid)
		return utils.DomainErrorResponse(c, err, "Failed to fetch profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// GetTransactions handles GET /user/transactions?limit&offset
func (h *UserHandler) GetTransactions(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "User.GetTransactions")

	var limit, offset int
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return utils.BadRequestResponse(c, "limit and offset must be integers")
	}

	uid := middleware.UserID(c)
	ctx := c.Request().Context()

	user, err := h.creditsUC.ResolveUser(ctx, uid)
	if err != nil {
		logUnexpected(err, "Failed to resolve user", uid)
		return utils.DomainErrorResponse(c, err, "Failed to fetch transactions")
	}

	page, err := h.creditsUC.ListTransactions(ctx, user.ID, limit, offset)
	if err != nil {
		logUnexpected(err, "Failed to fetch transactions", uid)
		return utils.DomainErrorResponse(c, err, "Failed to fetch transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", page)
}

// logUnexpected logs errors that do not map to a client-facing status
func logUnexpected(err error, msg, uid string) {
	if status, _ := utils.StatusForError(err, ""); status < http.StatusInternalServerError {
		return
	}
	logger.Error(msg,
		logger.ErrorField(err),
		logger.String("firebase_uid", uid),
	)
}
