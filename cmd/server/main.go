package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/receivables-be/internal/config"
	"github.com/grachmannico95/receivables-be/internal/export"
	"github.com/grachmannico95/receivables-be/internal/handler"
	"github.com/grachmannico95/receivables-be/internal/server"
	"github.com/grachmannico95/receivables-be/internal/service"
	"github.com/grachmannico95/receivables-be/internal/storage"
	"github.com/grachmannico95/receivables-be/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo := storage.NewMemoryStore(cfg.Session.TTL)
	log.Info(ctx, "Repository initialized",
		"session_ttl", cfg.Session.TTL.String(),
	)

	csvProcessor := service.NewCSVProcessor(log)
	receivableService := service.NewReceivableService(repo, csvProcessor, log, service.Options{
		MaxUploadSize: cfg.Upload.MaxSize,
		TopClients:    cfg.Report.TopClients,
		ReportTitle:   cfg.Report.Title,
		ReferenceDate: cfg.Report.ReferenceDate,
	})
	log.Info(ctx, "Services initialized",
		"max_upload_size", cfg.Upload.MaxSize,
		"fixed_reference_date", cfg.Report.ReferenceDate != nil,
	)

	pdfWriter := export.NewPDFWriter(cfg.Report.PDFTopClients)
	xlsxWriter := export.NewXLSXWriter(cfg.Report.XLSXTopClients)

	receivableHandler := handler.NewReceivableHandler(receivableService, pdfWriter, xlsxWriter, log)
	templateHandler := handler.NewTemplateHandler()
	healthHandler := handler.NewHealthHandler(receivableService)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, receivableHandler, templateHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	stats := receivableService.Stats(ctx)
	log.Info(ctx, "Application stopped gracefully",
		"sessions", stats.Sessions,
		"datasets", stats.Datasets,
	)
}
