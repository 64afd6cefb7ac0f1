package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/receivables-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

const TraceHeader = "X-Trace-ID"

// RequestID reuses the caller's trace id when present and echoes it back.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceHeader)
			if traceID == "" {
				traceID = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if traceID == "" {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(TraceHeader, traceID)

			return next(c)
		}
	}
}
