package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromZap(zap.New(core), "lotaya-test"), logs
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		wantType   string
	}{
		{name: "string panic", panicValue: "test panic message", wantType: "string"},
		{name: "error panic", panicValue: fmt.Errorf("test error panic"), wantType: "*errors.errorString"},
		{name: "int panic", panicValue: 42, wantType: "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := newObservedLogger()

			e := echo.New()
			e.Use(PanicRecoveryWithZapMiddleware(zl, "lotaya-test"))
			e.GET("/boom", func(c echo.Context) error {
				c.Set(ContextKeyUserID, "uid-1")
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-1")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])

			entries := logs.FilterMessage("Panic recovered during request processing").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, "uid-1", fields["user_id"])
			assert.Equal(t, "req-1", fields["request_id"])
			assert.Equal(t, "/boom", fields["path"])
			assert.Equal(t, tt.wantType, fields["panic_type"])
			assert.NotEmpty(t, fields["stack_trace"])
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanicPassesThrough(t *testing.T) {
	zl, logs := newObservedLogger()
	e := echo.New()
	e.Use(PanicRecoveryWithZapMiddleware(zl, "lotaya-test"))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "fine") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, logs.Len())
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}
