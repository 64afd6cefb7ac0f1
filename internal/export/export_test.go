package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/grachmannico95/receivables-be/internal/receivable"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var refDate = time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

func sampleReport(t *testing.T, clients int) Report {
	t.Helper()

	invoices := make([]domain.Invoice, 0, clients)
	for i := 0; i < clients; i++ {
		inv, err := receivable.ParseRow(receivable.RawRow{
			Line:   i + 2,
			Date:   "1/3/25",
			Text:   "FARMACIA Ñ " + string(rune('A'+i)) + " FT 10",
			Amount: decimal.NewFromInt(int64(100 + i)).String(),
		}, refDate)
		require.NoError(t, err)
		invoices = append(invoices, inv)
	}

	return Report{
		Title:         "Dashboard Cuentas por Cobrar",
		GeneratedAt:   refDate.Add(9 * time.Hour),
		ReferenceDate: refDate,
		Invoices:      invoices,
		Metrics:       receivable.ComputeMetrics(invoices),
	}
}

func TestPDFWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewPDFWriter(10)

	err := w.Write(&buf, sampleReport(t, 12))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, "application/pdf", w.ContentType())
	assert.Equal(t, "pdf", w.Extension())
}

func TestPDFWriter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer

	err := NewPDFWriter(0).Write(&buf, Report{
		Title:   "Empty",
		Metrics: receivable.ComputeMetrics(nil),
	})

	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestXLSXWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	report := sampleReport(t, 25)

	require.NoError(t, NewXLSXWriter(20).Write(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetMetrics, SheetInvoices, SheetAging, SheetTopClients}, f.GetSheetList())

	raw := excelize.Options{RawCellValue: true}

	metrics, err := f.GetRows(SheetMetrics, raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Metric", "Value"}, metrics[0])
	assert.Equal(t, []string{"Total invoices", "25"}, metrics[1])

	invoices, err := f.GetRows(SheetInvoices, raw)
	require.NoError(t, err)
	assert.Len(t, invoices, 26)
	assert.Equal(t, "Client", invoices[0][2])
	assert.Equal(t, "FARMACIA Ñ A", invoices[1][2])
	assert.Equal(t, "100", invoices[1][4])
	assert.Equal(t, "136", invoices[1][5])

	aging, err := f.GetRows(SheetAging, raw)
	require.NoError(t, err)
	assert.Len(t, aging, 5)
	assert.Equal(t, ">90", aging[4][0])

	top, err := f.GetRows(SheetTopClients, raw)
	require.NoError(t, err)
	assert.Len(t, top, 21)
	assert.Equal(t, "FARMACIA Ñ Y", top[1][1])
}

func TestXLSXWriter_EmptyReport(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewXLSXWriter(20).Write(&buf, Report{Metrics: receivable.ComputeMetrics(nil)}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	invoices, err := f.GetRows(SheetInvoices)
	require.NoError(t, err)
	assert.Len(t, invoices, 1)
}
