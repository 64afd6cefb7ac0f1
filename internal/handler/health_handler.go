package handler

import (
	"net/http"
	"time"

	"github.com/grachmannico95/receivables-be/internal/service"
	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	service service.ReceivableService
}

func NewHealthHandler(service service.ReceivableService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) Check(c echo.Context) error {
	stats := h.service.Stats(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"sessions":  stats.Sessions,
		"datasets":  stats.Datasets,
	})
}
