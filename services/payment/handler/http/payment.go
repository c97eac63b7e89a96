package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/middleware"
	"github.com/piresc/lotaya/internal/pkg/models"
	nrpkg "github.com/piresc/lotaya/internal/pkg/newrelic"
	"github.com/piresc/lotaya/internal/utils"
	"github.com/piresc/lotaya/services/payment"
)

// PaymentHandler handles top-up requests and gateway callbacks
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// Initiate handles POST /payment/initiate
func (h *PaymentHandler) Initiate(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Initiate")

	var req models.InitiateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for payment initiation",
			logger.ErrorField(err),
			logger.String("endpoint", "Initiate"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Amount <= 0 {
		return utils.DomainErrorResponse(c, models.ErrInvalidAmount, "")
	}

	uid := middleware.UserID(c)
	resp, err := h.paymentUC.Initiate(c.Request().Context(), uid, &req)
	if err != nil {
		logUnexpected(err, "Payment initiation error", uid)
		return utils.DomainErrorResponse(c, err, "Failed to initiate payment")
	}

	nrpkg.AddTransactionAttribute(txn, "payment.id", resp.PaymentID)
	nrpkg.AddTransactionAttribute(txn, "payment.amount_credits", req.Amount)

	return utils.SuccessResponse(c, http.StatusOK, "Payment initiated successfully", resp)
}

// Status handles GET /payment/status/:id
func (h *PaymentHandler) Status(c echo.Context) error {
	nrpkg.SetTransactionName(nrpkg.FromEchoContext(c), "Payment.Status")

	uid := middleware.UserID(c)
	view, err := h.paymentUC.GetStatus(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		logUnexpected(err, "Failed to fetch payment status", uid)
		return utils.DomainErrorResponse(c, err, "Failed to fetch payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status retrieved successfully", view)
}

// Callback handles POST /payment/callback. The gateway may post JSON or a
// urlencoded form; both bind to the same fields.
func (h *PaymentHandler) Callback(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Callback")

	var cb models.PaymentCallback
	if err := c.Bind(&cb); err != nil {
		logger.Warn("Invalid payment callback payload",
			logger.ErrorField(err),
			logger.String("endpoint", "Callback"),
		)
		return utils.BadRequestResponse(c, "Invalid request")
	}

	nrpkg.AddTransactionAttribute(txn, "payment.request_id", cb.RequestID)
	nrpkg.AddTransactionAttribute(txn, "payment.resp_code", cb.RespCode)

	if _, err := h.paymentUC.HandleCallback(c.Request().Context(), &cb); err != nil {
		if errors.Is(err, models.ErrInvalidSignature) {
			return utils.BadRequestResponse(c, "Invalid request")
		}
		if status, _ := utils.StatusForError(err, ""); status >= http.StatusInternalServerError {
			logger.Error("Payment callback error",
				logger.ErrorField(err),
				logger.String("request_id", cb.RequestID),
			)
		}
		return utils.DomainErrorResponse(c, err, "Payment callback processing failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Callback processed", map[string]string{"status": "ok"})
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
