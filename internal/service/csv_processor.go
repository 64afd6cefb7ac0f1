package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/grachmannico95/receivables-be/internal/receivable"
	"github.com/grachmannico95/receivables-be/pkg/logger"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	ColumnDocumentDate = "Fecha de documento"
	ColumnText         = "Texto"
	ColumnAmount       = "Importe valorado ML2"
)

var requiredColumns = []string{ColumnDocumentDate, ColumnText, ColumnAmount}

// A UTF-8 byte order mark read through the Latin-1 decoder.
const latin1BOM = "ï»¿"

type CSVProcessorInterface interface {
	Process(ctx context.Context, reader io.Reader, referenceDate time.Time) ([]domain.Invoice, domain.LoadReport, error)
}

type CSVProcessor struct {
	logger *logger.Logger
}

func NewCSVProcessor(log *logger.Logger) *CSVProcessor {
	return &CSVProcessor{
		logger: log,
	}
}

type columnIndex struct {
	date, text, amount int
}

func (c columnIndex) maxIndex() int {
	return max(c.date, c.text, c.amount)
}

// Process reads a semicolon-delimited Latin-1 export. Rows that cannot be
// turned into an invoice are skipped and counted in the report; only
// file-level problems return an error.
func (p *CSVProcessor) Process(ctx context.Context, reader io.Reader, referenceDate time.Time) ([]domain.Invoice, domain.LoadReport, error) {
	report := domain.NewLoadReport()

	csvReader := csv.NewReader(transform.NewReader(reader, charmap.ISO8859_1.NewDecoder()))
	csvReader.Comma = ';'
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, report, domain.ErrEmptyFile
	}
	if err != nil {
		return nil, report, fmt.Errorf("%w: header: %w", domain.ErrInvalidCSVFormat, err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, report, err
	}

	p.logger.Debug(ctx, "Header mapped",
		"date_column", columns.date,
		"text_column", columns.text,
		"amount_column", columns.amount,
	)

	invoices := make([]domain.Invoice, 0)

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, report, fmt.Errorf("%w: line %d: %w", domain.ErrInvalidCSVFormat, parseErr.Line, parseErr.Err)
			}
			return nil, report, fmt.Errorf("%w: %w", domain.ErrInvalidCSVFormat, err)
		}

		report.RowsRead++
		line, _ := csvReader.FieldPos(0)

		if len(record) <= columns.maxIndex() {
			report.Drop(domain.DropReasonShortRow)
			p.logger.Debug(ctx, "Row skipped",
				"line", line,
				"reason", domain.DropReasonShortRow,
				"fields", len(record),
			)
			continue
		}

		inv, err := receivable.ParseRow(receivable.RawRow{
			Line:   line,
			Date:   record[columns.date],
			Text:   record[columns.text],
			Amount: record[columns.amount],
		}, referenceDate)
		if err != nil {
			reason := receivable.DropReasonOf(err)
			report.Drop(reason)
			p.logger.Debug(ctx, "Row skipped",
				"line", line,
				"reason", reason,
				"error", err,
			)
			continue
		}

		invoices = append(invoices, inv)
	}

	report.InvoicesLoaded = len(invoices)

	p.logger.Info(ctx, "CSV processing completed",
		"rows_read", report.RowsRead,
		"invoices_loaded", report.InvoicesLoaded,
		"rows_dropped", report.RowsDropped,
	)

	return invoices, report, nil
}

func mapColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, latin1BOM)
		}
		name = strings.TrimSpace(name)
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := positions[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}

	return columnIndex{
		date:   positions[ColumnDocumentDate],
		text:   positions[ColumnText],
		amount: positions[ColumnAmount],
	}, nil
}
