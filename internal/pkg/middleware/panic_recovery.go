package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/utils"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	Logger      *logger.ZapLogger
	ServiceName string
}

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with New Relic integration and stack traces
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					err = handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger, serviceName string) echo.MiddlewareFunc {
	return PanicRecoveryMiddleware(PanicRecoveryConfig{Logger: zapLogger, ServiceName: serviceName})
}

func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) error {
	stackTrace := string(debug.Stack())
	req := c.Request()

	userID := "anonymous"
	if uid := UserID(c); uid != "" {
		userID = uid
	}

	requestID := getRequestID(c)
	panicType := fmt.Sprintf("%T", r)

	fields := []logger.Field{
		logger.Any("panic_value", r),
		logger.String("panic_type", panicType),
		logger.String("stack_trace", stackTrace),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
		logger.String("service", config.ServiceName),
	}

	txn := newrelic.FromContext(req.Context())
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":   panicType,
				"http.method":  req.Method,
				"http.path":    req.URL.Path,
				"user_id":      userID,
				"request_id":   requestID,
				"stack_trace":  stackTrace,
				"panic.value":  fmt.Sprintf("%v", r),
				"service.name": config.ServiceName,
			},
		})
		txn.AddAttribute("panic.recovered", true)
	}

	config.Logger.WithNewRelicContext(txn).Error("Panic recovered during request processing", fields...)

	if c.Response().Committed {
		return nil
	}
	return utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request")
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
