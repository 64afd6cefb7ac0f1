package receivable

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/shopspring/decimal"
)

const secondsPerDay = 24 * 60 * 60

// Date layouts tried in order: two-digit year first, then four-digit year.
var dateLayouts = []string{"2/1/06", "2/1/2006"}

type RawRow struct {
	Line   int
	Date   string
	Text   string
	Amount string
}

// RowError explains why a row was not turned into an Invoice.
type RowError struct {
	Line   int
	Reason domain.DropReason
	Err    error
}

func (e *RowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// DropReasonOf returns the reason carried by a row rejection, or "" when err
// is not a *RowError.
func DropReasonOf(err error) domain.DropReason {
	var rowErr *RowError
	if errors.As(err, &rowErr) {
		return rowErr.Reason
	}
	return ""
}

// ParseRow normalizes a raw row into a classified Invoice. Age is measured
// against the calendar date of ref.
func ParseRow(row RawRow, ref time.Time) (domain.Invoice, error) {
	rawDate := strings.TrimSpace(row.Date)
	text := strings.TrimSpace(row.Text)

	amount, err := ParseAmount(row.Amount)
	if err != nil {
		var rowErr *RowError
		if errors.As(err, &rowErr) {
			rowErr.Line = row.Line
		}
		return domain.Invoice{}, err
	}

	docDate, err := ParseDate(rawDate)
	if err != nil {
		return domain.Invoice{}, &RowError{Line: row.Line, Reason: domain.DropReasonInvalidDate, Err: err}
	}

	age := AgeDays(docDate, ref)

	return domain.Invoice{
		LineNumber:   row.Line,
		DocumentDate: docDate,
		Text:         text,
		ClientName:   ExtractClientName(text),
		Amount:       amount,
		AgeDays:      age,
		AgeBucket:    ClassifyAge(age),
		RiskTier:     ClassifyRisk(age, amount),
	}, nil
}

// ParseAmount reads an amount written with a comma decimal separator. Only
// strictly positive values are accepted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero, &RowError{Reason: domain.DropReasonEmptyAmount}
	}

	value = strings.ReplaceAll(value, ",", ".")

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &RowError{Reason: domain.DropReasonInvalidAmount, Err: err}
	}

	if !amount.IsPositive() {
		return decimal.Zero, &RowError{
			Reason: domain.DropReasonNonPositiveAmount,
			Err:    fmt.Errorf("amount %s is not positive", amount.String()),
		}
	}

	return amount, nil
}

// ParseDate accepts d/m/yy and d/m/yyyy. The result is midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q: %w", value, lastErr)
}

// AgeDays is the number of whole calendar days between the document date and
// the reference date.
func AgeDays(documentDate, ref time.Time) int {
	refDate := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	docDate := time.Date(documentDate.Year(), documentDate.Month(), documentDate.Day(), 0, 0, 0, 0, time.UTC)

	return int((refDate.Unix() - docDate.Unix()) / secondsPerDay)
}
