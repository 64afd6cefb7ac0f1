package receivable

import (
	"fmt"
	"strings"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/shopspring/decimal"
)

// Filter selects invoices for a view. Zero values and the "All" selector
// leave a constraint inactive; active constraints must all pass.
type Filter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	AgeBucket string
	RiskTier  string
	Client    string
}

func (f Filter) Validate() error {
	if active(f.AgeBucket) && !domain.AgeBucket(f.AgeBucket).Valid() {
		return fmt.Errorf("%w: unknown age bucket %q", domain.ErrInvalidFilter, f.AgeBucket)
	}
	if active(f.RiskTier) && !domain.RiskTier(f.RiskTier).Valid() {
		return fmt.Errorf("%w: unknown risk tier %q", domain.ErrInvalidFilter, f.RiskTier)
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return fmt.Errorf("%w: date range is inverted", domain.ErrInvalidFilter)
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MinAmount.GreaterThan(*f.MaxAmount) {
		return fmt.Errorf("%w: amount range is inverted", domain.ErrInvalidFilter)
	}
	return nil
}

func (f Filter) Match(inv domain.Invoice) bool {
	if f.DateFrom != nil && inv.DocumentDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && inv.DocumentDate.After(*f.DateTo) {
		return false
	}
	if f.MinAmount != nil && inv.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && inv.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if active(f.AgeBucket) && inv.AgeBucket != domain.AgeBucket(f.AgeBucket) {
		return false
	}
	if active(f.RiskTier) && inv.RiskTier != domain.RiskTier(f.RiskTier) {
		return false
	}
	if f.Client != "" && !strings.Contains(strings.ToUpper(inv.ClientName), strings.ToUpper(f.Client)) {
		return false
	}
	return true
}

// Apply returns the matching invoices in a new slice; the input is not
// modified.
func (f Filter) Apply(invoices []domain.Invoice) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if f.Match(inv) {
			out = append(out, inv)
		}
	}
	return out
}

func active(selector string) bool {
	return selector != "" && selector != domain.SelectorAll
}
