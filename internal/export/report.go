package export

import (
	"io"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is what both export formats render: the filtered invoices and the
// metrics computed over them.
type Report struct {
	Title         string
	GeneratedAt   time.Time
	ReferenceDate time.Time
	Invoices      []domain.Invoice
	Metrics       domain.Metrics
}

type Writer interface {
	Write(out io.Writer, report Report) error
	ContentType() string
	Extension() string
}

var printer = message.NewPrinter(language.English)

func formatMoney(d decimal.Decimal) string {
	return printer.Sprintf("$%.2f", d.InexactFloat64())
}

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}
