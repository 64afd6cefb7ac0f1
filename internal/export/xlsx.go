package export

import (
	"fmt"
	"io"

	"github.com/grachmannico95/receivables-be/internal/receivable"
	"github.com/xuri/excelize/v2"
)

const (
	SheetMetrics    = "Metrics"
	SheetInvoices   = "Invoices"
	SheetAging      = "Aging"
	SheetTopClients = "Top Clients"

	// Built-in number format #,##0.00
	numFmtAmount = 4
)

var dateFormat = "dd/mm/yyyy"

type XLSXWriter struct {
	TopClients int
}

func NewXLSXWriter(topClients int) *XLSXWriter {
	return &XLSXWriter{TopClients: topClients}
}

func (w *XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (w *XLSXWriter) Extension() string {
	return "xlsx"
}

type sheetTable struct {
	name          string
	header        []string
	rows          [][]interface{}
	widths        []float64
	amountColumns []string
	dateColumns   []string
}

func (w *XLSXWriter) Write(out io.Writer, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return err
	}

	tables := []sheetTable{
		metricsTable(report),
		invoicesTable(report),
		agingTable(report),
		w.topClientsTable(report),
	}

	for i, table := range tables {
		if i == 0 {
			err = f.SetSheetName("Sheet1", table.name)
		} else {
			_, err = f.NewSheet(table.name)
		}
		if err != nil {
			return fmt.Errorf("create sheet %s: %w", table.name, err)
		}

		if err := writeTable(f, styles, table); err != nil {
			return fmt.Errorf("write sheet %s: %w", table.name, err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.Write(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type workbookStyles struct {
	header, amount, date int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var styles workbookStyles
	var err error

	styles.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"0A9561"}, Pattern: 1},
	})
	if err != nil {
		return styles, fmt.Errorf("header style: %w", err)
	}

	styles.amount, err = f.NewStyle(&excelize.Style{NumFmt: numFmtAmount})
	if err != nil {
		return styles, fmt.Errorf("amount style: %w", err)
	}

	styles.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	if err != nil {
		return styles, fmt.Errorf("date style: %w", err)
	}

	return styles, nil
}

func writeTable(f *excelize.File, styles workbookStyles, table sheetTable) error {
	for i, width := range table.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(table.name, col, col, width); err != nil {
			return err
		}
	}
	for _, col := range table.amountColumns {
		if err := f.SetColStyle(table.name, col, styles.amount); err != nil {
			return err
		}
	}
	for _, col := range table.dateColumns {
		if err := f.SetColStyle(table.name, col, styles.date); err != nil {
			return err
		}
	}

	header := make([]interface{}, len(table.header))
	for i, h := range table.header {
		header[i] = h
	}
	if err := f.SetSheetRow(table.name, "A1", &header); err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(table.header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(table.name, "A1", lastHeader, styles.header); err != nil {
		return err
	}

	for i, row := range table.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(table.name, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

func metricsTable(report Report) sheetTable {
	m := report.Metrics
	return sheetTable{
		name:   SheetMetrics,
		header: []string{"Metric", "Value"},
		rows: [][]interface{}{
			{"Total invoices", m.InvoiceCount},
			{"Total amount", m.TotalAmount.InexactFloat64()},
			{"Unique clients", m.UniqueClients},
			{"Mean amount", m.MeanAmount.InexactFloat64()},
			{"Median amount", m.MedianAmount.InexactFloat64()},
			{"Max amount", m.MaxAmount.InexactFloat64()},
			{"Min amount", m.MinAmount.InexactFloat64()},
			{"Mean age (days)", m.MeanAgeDays},
			{"Reference date", report.ReferenceDate.Format("2006-01-02")},
			{"Generated at", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		},
		widths: []float64{22, 20},
	}
}

func invoicesTable(report Report) sheetTable {
	rows := make([][]interface{}, 0, len(report.Invoices))
	for _, inv := range report.Invoices {
		rows = append(rows, []interface{}{
			inv.LineNumber,
			inv.DocumentDate,
			inv.ClientName,
			inv.Text,
			inv.Amount.InexactFloat64(),
			inv.AgeDays,
			string(inv.AgeBucket),
			string(inv.RiskTier),
		})
	}

	return sheetTable{
		name:          SheetInvoices,
		header:        []string{"Line", "Document date", "Client", "Text", "Amount", "Age (days)", "Age bucket", "Risk tier"},
		rows:          rows,
		widths:        []float64{8, 14, 36, 48, 14, 11, 11, 10},
		amountColumns: []string{"E"},
		dateColumns:   []string{"B"},
	}
}

func agingTable(report Report) sheetTable {
	buckets := receivable.ByAgeBucket(report.Invoices)

	rows := make([][]interface{}, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []interface{}{
			string(b.Bucket),
			b.Amount.InexactFloat64(),
			b.Count,
			b.Mean.InexactFloat64(),
			b.Percent,
		})
	}

	return sheetTable{
		name:          SheetAging,
		header:        []string{"Age bucket", "Amount", "Invoices", "Mean amount", "% of total"},
		rows:          rows,
		widths:        []float64{12, 16, 10, 14, 11},
		amountColumns: []string{"B", "D"},
	}
}

func (w *XLSXWriter) topClientsTable(report Report) sheetTable {
	top := receivable.TopClients(report.Invoices, w.TopClients)

	rows := make([][]interface{}, 0, len(top))
	for i, c := range top {
		rows = append(rows, []interface{}{
			i + 1,
			c.Client,
			c.Amount.InexactFloat64(),
			c.Count,
			c.Percent,
		})
	}

	return sheetTable{
		name:          SheetTopClients,
		header:        []string{"Rank", "Client", "Amount", "Invoices", "% of total"},
		rows:          rows,
		widths:        []float64{6, 40, 16, 10, 11},
		amountColumns: []string{"C"},
	}
}
