package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/grachmannico95/receivables-be/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "Fecha de documento;Texto;Importe valorado ML2\n"

func process(t *testing.T, content string) ([]domain.Invoice, domain.LoadReport, error) {
	t.Helper()
	processor := NewCSVProcessor(logger.NewNop())
	return processor.Process(context.Background(), strings.NewReader(content), testRef)
}

func TestProcess_Latin1Rows(t *testing.T) {
	// "\xd1" and "\xfa" are Ñ and ú in Latin-1.
	content := testHeader +
		"1/3/25;Farmacia \xd1and\xfa FT 123;150,75\n" +
		"15/01/2025;SALDO FAV PAG D FT 456 Clinica Sur (ref 9);80\n"

	invoices, report, err := process(t, content)

	require.NoError(t, err)
	require.Len(t, invoices, 2)

	first := invoices[0]
	assert.Equal(t, 2, first.LineNumber)
	assert.Equal(t, "FARMACIA ÑANDÚ", first.ClientName)
	assert.Equal(t, "Farmacia Ñandú FT 123", first.Text)
	assert.Equal(t, "150.75", first.Amount.String())
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), first.DocumentDate)
	assert.Equal(t, 136, first.AgeDays)
	assert.Equal(t, domain.AgeBucketOver90, first.AgeBucket)
	assert.Equal(t, domain.RiskTierHigh, first.RiskTier)

	second := invoices[1]
	assert.Equal(t, 3, second.LineNumber)
	assert.Equal(t, "CLINICA SUR", second.ClientName)
	assert.Equal(t, 181, second.AgeDays)

	assert.Equal(t, 2, report.RowsRead)
	assert.Equal(t, 2, report.InvoicesLoaded)
	assert.Equal(t, 0, report.RowsDropped)
}

func TestProcess_DropReasons(t *testing.T) {
	content := testHeader +
		"2/3/25;SIN IMPORTE;\n" +
		"2/3/25;NEGATIVO;-5,00\n" +
		"2/3/25;CERO;0\n" +
		"2/3/25;TEXTO;abc\n" +
		"2025-03-02;FECHA ISO;10\n" +
		"solo;dos\n" +
		"2/3/25;VALIDO;10,5\n"

	invoices, report, err := process(t, content)

	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "VALIDO", invoices[0].ClientName)
	assert.Equal(t, 8, invoices[0].LineNumber)

	assert.Equal(t, 7, report.RowsRead)
	assert.Equal(t, 1, report.InvoicesLoaded)
	assert.Equal(t, 6, report.RowsDropped)
	assert.Equal(t, map[domain.DropReason]int{
		domain.DropReasonEmptyAmount:       1,
		domain.DropReasonNonPositiveAmount: 2,
		domain.DropReasonInvalidAmount:     1,
		domain.DropReasonInvalidDate:       1,
		domain.DropReasonShortRow:          1,
	}, report.DropReasons)
}

func TestProcess_ColumnOrderAndExtras(t *testing.T) {
	content := "Sociedad; Texto ;Importe valorado ML2;Moneda;Fecha de documento\n" +
		"1000;CLIENTE X;25,5;EUR;10/7/25\n"

	invoices, _, err := process(t, content)

	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "CLIENTE X", invoices[0].ClientName)
	assert.Equal(t, "25.5", invoices[0].Amount.String())
	assert.Equal(t, 5, invoices[0].AgeDays)
	assert.Equal(t, domain.RiskTierLow, invoices[0].RiskTier)
}

func TestProcess_ByteOrderMark(t *testing.T) {
	content := "\xef\xbb\xbf" + testHeader + "1/7/25;CLIENTE;10\n"

	invoices, _, err := process(t, content)

	require.NoError(t, err)
	assert.Len(t, invoices, 1)
}

func TestProcess_MissingColumn(t *testing.T) {
	content := "Fecha de documento;Texto;Importe\n1/7/25;CLIENTE;10\n"

	invoices, _, err := process(t, content)

	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.ErrorContains(t, err, "Importe valorado ML2")
	assert.Nil(t, invoices)
}

func TestProcess_EmptyFile(t *testing.T) {
	_, _, err := process(t, "")

	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}

func TestProcess_HeaderOnly(t *testing.T) {
	invoices, report, err := process(t, testHeader)

	require.NoError(t, err)
	assert.NotNil(t, invoices)
	assert.Empty(t, invoices)
	assert.Equal(t, 0, report.RowsRead)
}

func TestMapColumns(t *testing.T) {
	columns, err := mapColumns([]string{"Texto", "Fecha de documento", "Importe valorado ML2", "Texto"})

	require.NoError(t, err)
	assert.Equal(t, columnIndex{date: 1, text: 0, amount: 2}, columns)
	assert.Equal(t, 2, columns.maxIndex())
}
