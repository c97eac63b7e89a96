package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/identity"
	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/models"
	"github.com/piresc/lotaya/internal/pkg/requestcontext"
	"github.com/piresc/lotaya/internal/utils"
)

// ContextKeyUserID is the echo context key holding the verified external user id
const ContextKeyUserID = "user_id"

// AuthMiddleware verifies the bearer token on every request and stores the
// external user id it carries
func AuthMiddleware(verifier identity.Verifier, l *logger.ZapLogger) echo.MiddlewareFunc {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := identity.ExtractBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			uid, err := verifier.VerifyToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, models.ErrUpstreamUnavailable) {
					l.Error("Identity provider unavailable",
						logger.String("path", c.Path()),
						logger.ErrorField(err))
					return utils.ServiceUnavailableResponse(c, "Identity provider unavailable")
				}
				l.Debug("Rejected bearer token",
					logger.String("path", c.Path()),
					logger.ErrorField(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextKeyUserID, uid)
			if reqCtx := GetRequestContext(c); reqCtx != nil {
				reqCtx.UserID = uid
			}
			ctx := requestcontext.WithUserID(c.Request().Context(), uid)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserID returns the verified external user id set by AuthMiddleware
func UserID(c echo.Context) string {
	if uid, ok := c.Get(ContextKeyUserID).(string); ok {
		return uid
	}
	return ""
}
