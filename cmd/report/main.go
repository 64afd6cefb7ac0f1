package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/grachmannico95/receivables-be/internal/config"
	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/grachmannico95/receivables-be/internal/export"
	"github.com/grachmannico95/receivables-be/internal/receivable"
	"github.com/grachmannico95/receivables-be/internal/service"
	"github.com/grachmannico95/receivables-be/internal/storage"
	"github.com/grachmannico95/receivables-be/pkg/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const cliSession = "cli"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "summary":
		runSummary()
	case "pdf":
		runExport("pdf")
	case "xlsx":
		runExport("xlsx")
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Receivables report CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  report <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  summary   Print metrics, aging, risk and top clients for a file")
	fmt.Println("  pdf       Write the PDF report for a file")
	fmt.Println("  xlsx      Write the XLSX workbook for a file")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'report <command> -h' for more information on a command.")
}

type commonFlags struct {
	file     *string
	ref      *string
	logLevel *string
	risk     *string
	bucket   *string
	client   *string
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		file:     fs.String("file", "", "Path to the semicolon-delimited Latin-1 export"),
		ref:      fs.String("ref", "", "Reference date YYYY-MM-DD (defaults to REFERENCE_DATE or today)"),
		logLevel: fs.String("log-level", "warn", "Log level"),
		risk:     fs.String("risk", "", "Only include this risk tier (High, Medium, Low)"),
		bucket:   fs.String("bucket", "", "Only include this age bucket (0-30, 31-60, 61-90, >90)"),
		client:   fs.String("client", "", "Only include clients containing this text"),
	}
}

// load runs the file through the same service the HTTP server uses, bound to
// a throwaway in-memory session.
func load(ctx context.Context, flags commonFlags, log *logger.Logger) (service.ReceivableService, receivable.Filter, *config.Config) {
	if *flags.file == "" {
		log.Fatal(ctx, "Error: -file is required")
	}

	cfg := config.Load()
	refDate := cfg.Report.ReferenceDate
	if *flags.ref != "" {
		parsed, err := time.Parse(time.DateOnly, *flags.ref)
		if err != nil {
			log.Fatal(ctx, "Invalid -ref date",
				"value", *flags.ref,
				"error", err,
			)
		}
		refDate = &parsed
	}

	svc := service.NewReceivableService(storage.NewMemoryStore(0), service.NewCSVProcessor(log), log, service.Options{
		TopClients:    cfg.Report.TopClients,
		ReportTitle:   cfg.Report.Title,
		ReferenceDate: refDate,
	})

	f, err := os.Open(*flags.file)
	if err != nil {
		log.Fatal(ctx, "Failed to open file",
			"file", *flags.file,
			"error", err,
		)
	}
	defer f.Close()

	result, err := svc.Upload(ctx, cliSession, f)
	if err != nil {
		log.Fatal(ctx, "Failed to load file",
			"file", *flags.file,
			"error", err,
		)
	}

	fmt.Fprintf(os.Stderr, "Loaded %d invoices (%d rows dropped)\n",
		result.Report.InvoicesLoaded, result.Report.RowsDropped)

	filter := receivable.Filter{
		RiskTier:  *flags.risk,
		AgeBucket: *flags.bucket,
		Client:    *flags.client,
	}
	if err := filter.Validate(); err != nil {
		log.Fatal(ctx, "Invalid filter",
			"error", err,
		)
	}

	return svc, filter, cfg
}

func runSummary() {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	flags := registerCommon(fs)
	top := fs.Int("top", receivable.DefaultTopClients, "Number of clients to list")
	fs.Parse(os.Args[2:])

	log := logger.New(*flags.logLevel)
	defer log.Sync()
	ctx := context.Background()

	svc, filter, _ := load(ctx, flags, log)

	dashboard, err := svc.Dashboard(ctx, cliSession, filter)
	if err != nil {
		log.Fatal(ctx, "Failed to build summary",
			"error", err,
		)
	}
	clients, err := svc.TopClients(ctx, cliSession, filter, *top)
	if err != nil {
		log.Fatal(ctx, "Failed to rank clients",
			"error", err,
		)
	}
	dashboard.TopClients = clients

	printSummary(os.Stdout, dashboard)
}

func printSummary(out io.Writer, d domain.Dashboard) {
	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	m := d.Metrics
	fmt.Fprintln(w, "METRICS")
	p.Fprintf(w, "Invoices\t%d\n", m.InvoiceCount)
	p.Fprintf(w, "Total amount\t%.2f\n", m.TotalAmount.InexactFloat64())
	p.Fprintf(w, "Unique clients\t%d\n", m.UniqueClients)
	p.Fprintf(w, "Mean amount\t%.2f\n", m.MeanAmount.InexactFloat64())
	p.Fprintf(w, "Median amount\t%.2f\n", m.MedianAmount.InexactFloat64())
	p.Fprintf(w, "Mean age (days)\t%.1f\n", m.MeanAgeDays)

	fmt.Fprintln(w, "\nAGING\tAMOUNT\tCOUNT\tSHARE")
	for _, b := range d.Aging {
		p.Fprintf(w, "%s\t%.2f\t%d\t%.1f%%\n", b.Bucket, b.Amount.InexactFloat64(), b.Count, b.Percent)
	}

	fmt.Fprintln(w, "\nRISK\tAMOUNT\tCOUNT")
	for _, r := range d.Risk {
		p.Fprintf(w, "%s\t%.2f\t%d\n", r.Tier, r.Amount.InexactFloat64(), r.Count)
	}

	fmt.Fprintln(w, "\nCLIENT\tAMOUNT\tCOUNT\tSHARE")
	for _, c := range d.TopClients {
		name := c.Client
		if strings.TrimSpace(name) == "" {
			name = "(blank)"
		}
		p.Fprintf(w, "%s\t%.2f\t%d\t%.1f%%\n", name, c.Amount.InexactFloat64(), c.Count, c.Percent)
	}

	if d.Alerts.CriticalCount > 0 {
		p.Fprintf(w, "\n%d invoices older than 90 days (%.2f)\n", d.Alerts.CriticalCount, d.Alerts.CriticalAmount.InexactFloat64())
	}

	w.Flush()
}

func runExport(format string) {
	fs := flag.NewFlagSet(format, flag.ExitOnError)
	flags := registerCommon(fs)
	outPath := fs.String("out", "", "Output path (defaults to cuentas_por_cobrar."+format+")")
	top := fs.Int("top", 0, "Clients in the top table (defaults to PDF_TOP_CLIENTS / XLSX_TOP_CLIENTS)")
	fs.Parse(os.Args[2:])

	log := logger.New(*flags.logLevel)
	defer log.Sync()
	ctx := context.Background()

	svc, filter, cfg := load(ctx, flags, log)

	var writer export.Writer
	switch format {
	case "pdf":
		writer = export.NewPDFWriter(pick(*top, cfg.Report.PDFTopClients))
	default:
		writer = export.NewXLSXWriter(pick(*top, cfg.Report.XLSXTopClients))
	}

	if *outPath == "" {
		*outPath = "cuentas_por_cobrar." + writer.Extension()
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(ctx, "Failed to create output",
			"path", *outPath,
			"error", err,
		)
	}

	if err := svc.Export(ctx, cliSession, filter, writer, out); err != nil {
		out.Close()
		log.Fatal(ctx, "Export failed",
			"error", err,
		)
	}
	if err := out.Close(); err != nil {
		log.Fatal(ctx, "Failed to close output",
			"error", err,
		)
	}

	fmt.Printf("Wrote %s\n", *outPath)
}

func pick(flagValue, configured int) int {
	if flagValue > 0 {
		return flagValue
	}
	return configured
}
