package middleware

import (
	"github.com/grachmannico95/receivables-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

// SessionContext tags the request context with the session named by the
// :id path parameter so every log line of the request carries it.
func SessionContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sessionID := c.Param("id"); sessionID != "" {
				ctx := logger.WithSessionID(c.Request().Context(), sessionID)
				c.SetRequest(c.Request().WithContext(ctx))
			}

			return next(c)
		}
	}
}
