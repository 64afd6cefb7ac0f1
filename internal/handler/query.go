package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/grachmannico95/receivables-be/internal/receivable"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPage    = 1
	defaultPerPage = 50
	maxPerPage     = 500
)

// parseFilter reads the view filter from the query string. Empty parameters
// leave the constraint inactive.
func parseFilter(c echo.Context) (receivable.Filter, error) {
	var filter receivable.Filter
	var err error

	if filter.DateFrom, err = parseDateParam(c, "from"); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseDateParam(c, "to"); err != nil {
		return filter, err
	}
	if filter.MinAmount, err = parseAmountParam(c, "min_amount"); err != nil {
		return filter, err
	}
	if filter.MaxAmount, err = parseAmountParam(c, "max_amount"); err != nil {
		return filter, err
	}

	filter.AgeBucket = strings.TrimSpace(c.QueryParam("age_bucket"))
	filter.RiskTier = strings.TrimSpace(c.QueryParam("risk"))
	filter.Client = strings.TrimSpace(c.QueryParam("client"))

	return filter, filter.Validate()
}

func parseDateParam(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrInvalidFilter, name)
	}
	return &t, nil
}

func parseAmountParam(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a number", domain.ErrInvalidFilter, name)
	}
	return &d, nil
}

func parsePagination(c echo.Context) (int, int) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return page, perPage
}
