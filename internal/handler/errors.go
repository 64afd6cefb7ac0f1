package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/grachmannico95/receivables-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidPageParams),
		errors.Is(err, domain.ErrEmptyFile),
		errors.Is(err, domain.ErrMissingColumn),
		errors.Is(err, domain.ErrInvalidCSVFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as JSON. Internal errors are logged and replaced
// by fallback so that nothing internal leaks to the client.
func respondError(c echo.Context, log *logger.Logger, err error, fallback string) error {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		log.Error(c.Request().Context(), fallback,
			"error", err,
		)
		return c.JSON(status, map[string]string{
			"error": fallback,
		})
	}

	return c.JSON(status, map[string]string{
		"error": err.Error(),
	})
}
