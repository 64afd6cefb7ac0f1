package handler

import (
	"net/http"

	"github.com/grachmannico95/receivables-be/internal/service"
	"github.com/labstack/echo/v4"
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// Template describes the file the upload endpoint expects.
func (h *TemplateHandler) Template(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"delimiter": ";",
		"encoding":  "latin-1",
		"columns": []string{
			service.ColumnDocumentDate,
			service.ColumnText,
			service.ColumnAmount,
		},
		"date_formats":      []string{"d/m/yy", "d/m/yyyy"},
		"decimal_separator": ",",
		"example": []map[string]string{
			{
				service.ColumnDocumentDate: "01/03/25",
				service.ColumnText:         "FARMACIA EJEMPLO FT 12345",
				service.ColumnAmount:       "150,75",
			},
			{
				service.ColumnDocumentDate: "15/01/2025",
				service.ColumnText:         "CLINICA EJEMPLO (SUCURSAL)",
				service.ColumnAmount:       "1200,00",
			},
		},
	})
}
