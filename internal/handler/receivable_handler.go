package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/grachmannico95/receivables-be/internal/export"
	"github.com/grachmannico95/receivables-be/internal/receivable"
	"github.com/grachmannico95/receivables-be/internal/service"
	"github.com/grachmannico95/receivables-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

const SessionHeader = "X-Session-ID"

type ReceivableHandler struct {
	service service.ReceivableService
	pdf     export.Writer
	xlsx    export.Writer
	logger  *logger.Logger
}

func NewReceivableHandler(service service.ReceivableService, pdf, xlsx export.Writer, log *logger.Logger) *ReceivableHandler {
	return &ReceivableHandler{
		service: service,
		pdf:     pdf,
		xlsx:    xlsx,
		logger:  log,
	}
}

func (h *ReceivableHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling upload request")

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	result, err := h.service.Upload(ctx, c.Request().Header.Get(SessionHeader), src)
	if err != nil {
		return respondError(c, h.logger, err, "failed to load file")
	}

	h.logger.Info(ctx, "Upload successful",
		"session_id", result.SessionID,
		"filename", file.Filename,
		"cached", result.Cached,
	)

	c.Response().Header().Set(SessionHeader, result.SessionID)
	return c.JSON(http.StatusCreated, result)
}

func (h *ReceivableHandler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("id")

	session, dataset, err := h.service.GetSession(ctx, sessionID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to get session")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session": session,
		"dataset": dataset,
	})
}

func (h *ReceivableHandler) EndSession(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.service.EndSession(ctx, c.Param("id")); err != nil {
		return respondError(c, h.logger, err, "failed to end session")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReceivableHandler) Dashboard(c echo.Context) error {
	return h.view(c, "failed to build dashboard", func(sessionID string, filter receivable.Filter) (interface{}, error) {
		return h.service.Dashboard(c.Request().Context(), sessionID, filter)
	})
}

func (h *ReceivableHandler) Metrics(c echo.Context) error {
	return h.view(c, "failed to compute metrics", func(sessionID string, filter receivable.Filter) (interface{}, error) {
		return h.service.Metrics(c.Request().Context(), sessionID, filter)
	})
}

func (h *ReceivableHandler) Aging(c echo.Context) error {
	return h.view(c, "failed to compute aging", func(sessionID string, filter receivable.Filter) (interface{}, error) {
		rows, err := h.service.Aging(c.Request().Context(), sessionID, filter)
		return map[string]interface{}{"items": rows}, err
	})
}

func (h *ReceivableHandler) Risk(c echo.Context) error {
	return h.view(c, "failed to compute risk", func(sessionID string, filter receivable.Filter) (interface{}, error) {
		rows, err := h.service.Risk(c.Request().Context(), sessionID, filter)
		return map[string]interface{}{"items": rows}, err
	})
}

func (h *ReceivableHandler) TopClients(c echo.Context) error {
	top := 0
	if raw := c.QueryParam("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "top must be a positive integer",
			})
		}
		top = n
	}

	return h.view(c, "failed to rank clients", func(sessionID string, filter receivable.Filter) (interface{}, error) {
		rows, err := h.service.TopClients(c.Request().Context(), sessionID, filter, top)
		return map[string]interface{}{"items": rows}, err
	})
}

func (h *ReceivableHandler) HighRiskClients(c echo.Context) error {
	return h.view(c, "failed to rank high risk clients", func(sessionID string, filter receivable.Filter) (interface{}, error) {
		rows, err := h.service.HighRiskClients(c.Request().Context(), sessionID, filter)
		return map[string]interface{}{"items": rows}, err
	})
}

func (h *ReceivableHandler) Trends(c echo.Context) error {
	period := domain.TrendPeriod(c.QueryParam("period"))
	if period == "" {
		period = domain.TrendPeriodMonth
	}

	return h.view(c, "failed to compute trends", func(sessionID string, filter receivable.Filter) (interface{}, error) {
		rows, err := h.service.Trends(c.Request().Context(), sessionID, filter, period)
		return map[string]interface{}{"period": period, "items": rows}, err
	})
}

func (h *ReceivableHandler) Invoices(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("id")

	filter, err := parseFilter(c)
	if err != nil {
		return respondError(c, h.logger, err, "invalid filter")
	}
	page, perPage := parsePagination(c)

	h.logger.Debug(ctx, "Listing invoices",
		"page", page,
		"per_page", perPage,
	)

	invoices, total, err := h.service.Invoices(ctx, sessionID, filter, page, perPage)
	if err != nil {
		return respondError(c, h.logger, err, "failed to list invoices")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"items":      invoices,
		"page":       page,
		"per_page":   perPage,
		"total":      total,
	})
}

func (h *ReceivableHandler) ExportPDF(c echo.Context) error {
	return h.export(c, h.pdf)
}

func (h *ReceivableHandler) ExportXLSX(c echo.Context) error {
	return h.export(c, h.xlsx)
}

func (h *ReceivableHandler) export(c echo.Context, writer export.Writer) error {
	ctx := c.Request().Context()
	sessionID := c.Param("id")

	filter, err := parseFilter(c)
	if err != nil {
		return respondError(c, h.logger, err, "invalid filter")
	}

	var buf bytes.Buffer
	if err := h.service.Export(ctx, sessionID, filter, writer, &buf); err != nil {
		return respondError(c, h.logger, err, "failed to export report")
	}

	filename := fmt.Sprintf("cuentas_por_cobrar.%s", writer.Extension())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, writer.ContentType(), buf.Bytes())
}

// view runs a filtered read against the session named in the path.
func (h *ReceivableHandler) view(c echo.Context, fallback string, fn func(sessionID string, filter receivable.Filter) (interface{}, error)) error {
	filter, err := parseFilter(c)
	if err != nil {
		return respondError(c, h.logger, err, "invalid filter")
	}

	body, err := fn(c.Param("id"), filter)
	if err != nil {
		return respondError(c, h.logger, err, fallback)
	}

	return c.JSON(http.StatusOK, body)
}
