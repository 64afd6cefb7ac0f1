package middleware

import (
	"time"

	"github.com/grachmannico95/receivables-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []interface{}{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"route", c.Path(),
				"status", c.Response().Status,
				"bytes_out", c.Response().Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}

			ctx := c.Request().Context()
			if c.Response().Status >= 500 {
				log.Error(ctx, "HTTP request", fields...)
			} else {
				log.Info(ctx, "HTTP request", fields...)
			}

			return nil
		}
	}
}
