package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/grachmannico95/receivables-be/internal/receivable"
)

const (
	pdfLineHeight = 7.0
	pdfPageWidth  = 180.0
)

// Header fill, the brand dark green.
var pdfHeaderFill = [3]int{10, 149, 97}

type PDFWriter struct {
	TopClients int
}

func NewPDFWriter(topClients int) *PDFWriter {
	return &PDFWriter{TopClients: topClients}
}

func (w *PDFWriter) ContentType() string {
	return "application/pdf"
}

func (w *PDFWriter) Extension() string {
	return "pdf"
}

func (w *PDFWriter) Write(out io.Writer, report Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(report.Title, true)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(report.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s - ages as of %s",
		report.GeneratedAt.Format("2006-01-02 15:04"),
		report.ReferenceDate.Format("2006-01-02"),
	), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	m := report.Metrics
	sectionTitle(pdf, "Key metrics")
	table(pdf, tr, []float64{90, 90}, []string{"Metric", "Value"}, [][]string{
		{"Total invoices", formatCount(m.InvoiceCount)},
		{"Total amount", formatMoney(m.TotalAmount)},
		{"Unique clients", formatCount(m.UniqueClients)},
		{"Mean amount per invoice", formatMoney(m.MeanAmount)},
		{"Median amount", formatMoney(m.MedianAmount)},
		{"Largest invoice", formatMoney(m.MaxAmount)},
		{"Smallest invoice", formatMoney(m.MinAmount)},
		{"Mean age (days)", strconv.FormatFloat(m.MeanAgeDays, 'f', 1, 64)},
	}, []string{"L", "R"})

	alerts := receivable.CriticalAlerts(report.Invoices)
	if alerts.CriticalCount > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(114, 28, 36)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d invoices older than 90 days (%s) require immediate attention.",
			alerts.CriticalCount, formatMoney(alerts.CriticalAmount)), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.Ln(4)
	top := receivable.TopClients(report.Invoices, w.TopClients)
	sectionTitle(pdf, fmt.Sprintf("Top %d clients by amount", w.topN()))

	rows := make([][]string, 0, len(top))
	for i, client := range top {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			client.Client,
			formatMoney(client.Amount),
			strconv.FormatFloat(client.Percent, 'f', 1, 64) + "%",
		})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"", "No invoices match the current filters", "", ""})
	}
	table(pdf, tr, []float64{12, 103, 40, 25}, []string{"#", "Client", "Amount", "% of total"}, rows,
		[]string{"C", "L", "R", "R"})

	return pdf.Output(out)
}

func (w *PDFWriter) topN() int {
	if w.TopClients <= 0 {
		return receivable.DefaultTopClients
	}
	return w.TopClients
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(pdfPageWidth, 8, title, "", 1, "L", false, 0, "")
}

func table(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, header []string, rows [][]string, aligns []string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(pdfHeaderFill[0], pdfHeaderFill[1], pdfHeaderFill[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		pdf.CellFormat(widths[i], pdfLineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], pdfLineHeight, fit(pdf, tr(cell), widths[i]-2), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// fit shortens text until it fits in width, marking the cut with "..".
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	for len(text) > 0 && pdf.GetStringWidth(text+"..") > width {
		text = text[:len(text)-1]
	}
	return text + ".."
}
