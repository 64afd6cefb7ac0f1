package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/receivables-be/internal/config"
	"github.com/grachmannico95/receivables-be/internal/handler"
	"github.com/grachmannico95/receivables-be/internal/middleware"
	"github.com/grachmannico95/receivables-be/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo              *echo.Echo
	cfg               *config.Config
	logger            *logger.Logger
	receivableHandler *handler.ReceivableHandler
	templateHandler   *handler.TemplateHandler
	healthHandler     *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	receivableHandler *handler.ReceivableHandler,
	templateHandler *handler.TemplateHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:              e,
		cfg:               cfg,
		logger:            log,
		receivableHandler: receivableHandler,
		templateHandler:   templateHandler,
		healthHandler:     healthHandler,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		ExposeHeaders: []string{handler.SessionHeader, middleware.TraceHeader, echo.HeaderContentDisposition},
	}))
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)
	s.echo.GET("/template", s.templateHandler.Template)

	s.echo.POST("/sessions/upload", s.receivableHandler.Upload)

	sessions := s.echo.Group("/sessions/:id", middleware.SessionContext())
	sessions.GET("", s.receivableHandler.GetSession)
	sessions.DELETE("", s.receivableHandler.EndSession)
	sessions.GET("/dashboard", s.receivableHandler.Dashboard)
	sessions.GET("/invoices", s.receivableHandler.Invoices)
	sessions.GET("/metrics", s.receivableHandler.Metrics)
	sessions.GET("/aging", s.receivableHandler.Aging)
	sessions.GET("/risk", s.receivableHandler.Risk)
	sessions.GET("/clients", s.receivableHandler.TopClients)
	sessions.GET("/clients/high-risk", s.receivableHandler.HighRiskClients)
	sessions.GET("/trends", s.receivableHandler.Trends)
	sessions.GET("/export/pdf", s.receivableHandler.ExportPDF)
	sessions.GET("/export/xlsx", s.receivableHandler.ExportXLSX)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
