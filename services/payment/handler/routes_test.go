package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/models"
	paymenthttp "github.com/piresc/lotaya/services/payment/handler/http"
	"github.com/piresc/lotaya/services/payment/mocks"
	"github.com/stretchr/testify/assert"
)

func denyAll(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusUnauthorized)
	}
}

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	e := echo.New()
	NewHandler(paymenthttp.NewPaymentHandler(mockUC)).RegisterRoutes(e.Group("/api"), denyAll)

	mockUC.EXPECT().
		HandleCallback(gomock.Any(), gomock.Any()).
		Return(&models.CallbackResult{Applied: true}, nil)

	testCases := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "Callback is public", method: http.MethodPost, path: "/api/payment/callback", wantStatus: http.StatusOK},
		{name: "Initiate requires auth", method: http.MethodPost, path: "/api/payment/initiate", wantStatus: http.StatusUnauthorized},
		{name: "Status requires auth", method: http.MethodGet, path: "/api/payment/status/pay-1", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{"request_id":"REQ1","amount":"1000.00"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
