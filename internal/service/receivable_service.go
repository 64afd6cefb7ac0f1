package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/receivables-be/internal/domain"
	"github.com/grachmannico95/receivables-be/internal/export"
	"github.com/grachmannico95/receivables-be/internal/receivable"
	"github.com/grachmannico95/receivables-be/pkg/logger"
)

type ReceivableService interface {
	Upload(ctx context.Context, sessionID string, reader io.Reader) (*domain.UploadResult, error)
	GetSession(ctx context.Context, sessionID string) (*domain.Session, *domain.Dataset, error)
	EndSession(ctx context.Context, sessionID string) error

	Invoices(ctx context.Context, sessionID string, filter receivable.Filter, page, perPage int) ([]domain.Invoice, int, error)
	Metrics(ctx context.Context, sessionID string, filter receivable.Filter) (domain.Metrics, error)
	Aging(ctx context.Context, sessionID string, filter receivable.Filter) ([]domain.BucketSummary, error)
	Risk(ctx context.Context, sessionID string, filter receivable.Filter) (receivable.RiskSummary, error)
	TopClients(ctx context.Context, sessionID string, filter receivable.Filter, n int) ([]domain.ClientTotal, error)
	HighRiskClients(ctx context.Context, sessionID string, filter receivable.Filter) ([]domain.ClientTotal, error)
	Trends(ctx context.Context, sessionID string, filter receivable.Filter, period domain.TrendPeriod) ([]domain.PeriodSummary, error)
	Dashboard(ctx context.Context, sessionID string, filter receivable.Filter) (domain.Dashboard, error)

	Export(ctx context.Context, sessionID string, filter receivable.Filter, writer export.Writer, out io.Writer) error
	Stats(ctx context.Context) domain.StoreStats
}

type Options struct {
	MaxUploadSize int64
	TopClients    int
	ReportTitle   string
	ReferenceDate *time.Time
	Now           func() time.Time
}

type receivableService struct {
	repo      domain.Repository
	processor CSVProcessorInterface
	logger    *logger.Logger
	opts      Options
}

func NewReceivableService(repo domain.Repository, processor CSVProcessorInterface, log *logger.Logger, opts Options) ReceivableService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TopClients <= 0 {
		opts.TopClients = receivable.DefaultTopClients
	}

	return &receivableService{
		repo:      repo,
		processor: processor,
		logger:    log,
		opts:      opts,
	}
}

// Upload loads a file into a session, reusing the parsed dataset when the
// same bytes were already loaded for the same reference date. An empty
// sessionID starts a new session.
func (s *receivableService) Upload(ctx context.Context, sessionID string, reader io.Reader) (*domain.UploadResult, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	ctx = logger.WithSessionID(ctx, sessionID)

	data, err := s.readUpload(reader)
	if err != nil {
		s.logger.Warn(ctx, "Failed to read upload",
			"error", err,
		)
		return nil, err
	}

	now := s.opts.Now()
	if purged := s.repo.PurgeExpired(ctx, now); purged > 0 {
		s.logger.Info(ctx, "Expired sessions purged",
			"count", purged,
		)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	ref := s.referenceDate(now)
	ctx = logger.WithDatasetHash(ctx, hash)

	dataset, err := s.repo.GetDataset(ctx, domain.CacheKey(hash, ref))
	cached := err == nil

	switch {
	case cached:
		s.logger.Info(ctx, "Dataset found in cache, skipping parse")
	case errors.Is(err, domain.ErrDatasetNotFound):
		s.logger.Info(ctx, "Parsing upload",
			"bytes", len(data),
			"reference_date", ref.Format(time.DateOnly),
		)

		invoices, report, err := s.processor.Process(ctx, bytes.NewReader(data), ref)
		if err != nil {
			s.logger.Warn(ctx, "Upload rejected",
				"error", err,
			)
			return nil, err
		}

		dataset = &domain.Dataset{
			Hash:          hash,
			ReferenceDate: ref,
			Invoices:      invoices,
			Report:        report,
			LoadedAt:      now,
		}
	default:
		s.logger.Error(ctx, "Failed to look up dataset",
			"error", err,
		)
		return nil, err
	}

	session, err := s.repo.BindSession(ctx, sessionID, dataset)
	if err != nil {
		s.logger.Error(ctx, "Failed to bind session",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Upload loaded",
		"cached", cached,
		"invoices", dataset.Report.InvoicesLoaded,
		"rows_dropped", dataset.Report.RowsDropped,
	)

	return &domain.UploadResult{
		SessionID: session.ID,
		Hash:      dataset.Hash,
		Cached:    cached,
		Report:    dataset.Report,
	}, nil
}

func (s *receivableService) readUpload(reader io.Reader) ([]byte, error) {
	limited := reader
	if s.opts.MaxUploadSize > 0 {
		limited = io.LimitReader(reader, s.opts.MaxUploadSize+1)
	}

	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if s.opts.MaxUploadSize > 0 && int64(len(data)) > s.opts.MaxUploadSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", domain.ErrFileTooLarge, s.opts.MaxUploadSize)
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	return data, nil
}

func (s *receivableService) referenceDate(now time.Time) time.Time {
	if s.opts.ReferenceDate != nil {
		return *s.opts.ReferenceDate
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *receivableService) GetSession(ctx context.Context, sessionID string) (*domain.Session, *domain.Dataset, error) {
	ctx = logger.WithSessionID(ctx, sessionID)

	session, dataset, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		s.logger.Debug(ctx, "Session lookup failed",
			"error", err,
		)
		return nil, nil, err
	}

	return session, dataset, nil
}

func (s *receivableService) EndSession(ctx context.Context, sessionID string) error {
	ctx = logger.WithSessionID(ctx, sessionID)

	if err := s.repo.DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	s.logger.Info(ctx, "Session ended")
	return nil
}

// view returns the session's invoices that pass filter.
func (s *receivableService) view(ctx context.Context, sessionID string, filter receivable.Filter) ([]domain.Invoice, *domain.Dataset, error) {
	if err := filter.Validate(); err != nil {
		return nil, nil, err
	}

	_, dataset, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	invoices := filter.Apply(dataset.Invoices)

	s.logger.Debug(logger.WithSessionID(ctx, sessionID), "View computed",
		"total", len(dataset.Invoices),
		"matched", len(invoices),
	)

	return invoices, dataset, nil
}

func (s *receivableService) Invoices(ctx context.Context, sessionID string, filter receivable.Filter, page, perPage int) ([]domain.Invoice, int, error) {
	invoices, _, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 || perPage < 1 {
		return nil, 0, domain.ErrInvalidPageParams
	}

	total := len(invoices)
	start := (page - 1) * perPage
	if start >= total {
		return []domain.Invoice{}, total, nil
	}
	end := min(start+perPage, total)

	return invoices[start:end], total, nil
}

func (s *receivableService) Metrics(ctx context.Context, sessionID string, filter receivable.Filter) (domain.Metrics, error) {
	invoices, _, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return domain.Metrics{}, err
	}
	return receivable.ComputeMetrics(invoices), nil
}

func (s *receivableService) Aging(ctx context.Context, sessionID string, filter receivable.Filter) ([]domain.BucketSummary, error) {
	invoices, _, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return nil, err
	}
	return receivable.ByAgeBucket(invoices), nil
}

func (s *receivableService) Risk(ctx context.Context, sessionID string, filter receivable.Filter) (receivable.RiskSummary, error) {
	invoices, _, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return nil, err
	}
	return receivable.ByRiskTier(invoices), nil
}

func (s *receivableService) TopClients(ctx context.Context, sessionID string, filter receivable.Filter, n int) ([]domain.ClientTotal, error) {
	invoices, _, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = s.opts.TopClients
	}
	return receivable.TopClients(invoices, n), nil
}

func (s *receivableService) HighRiskClients(ctx context.Context, sessionID string, filter receivable.Filter) ([]domain.ClientTotal, error) {
	invoices, _, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return nil, err
	}
	return receivable.HighRiskClients(invoices), nil
}

func (s *receivableService) Trends(ctx context.Context, sessionID string, filter receivable.Filter, period domain.TrendPeriod) ([]domain.PeriodSummary, error) {
	var group func([]domain.Invoice) []domain.PeriodSummary
	switch period {
	case domain.TrendPeriodMonth, "":
		group = receivable.ByMonth
	case domain.TrendPeriodQuarter:
		group = receivable.ByQuarter
	default:
		return nil, fmt.Errorf("%w: unknown period %q", domain.ErrInvalidFilter, period)
	}

	invoices, _, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return nil, err
	}
	return group(invoices), nil
}

func (s *receivableService) Dashboard(ctx context.Context, sessionID string, filter receivable.Filter) (domain.Dashboard, error) {
	invoices, _, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return domain.Dashboard{}, err
	}
	return receivable.BuildDashboard(invoices, s.opts.TopClients), nil
}

func (s *receivableService) Export(ctx context.Context, sessionID string, filter receivable.Filter, writer export.Writer, out io.Writer) error {
	invoices, dataset, err := s.view(ctx, sessionID, filter)
	if err != nil {
		return err
	}

	ctx = logger.WithDatasetHash(logger.WithSessionID(ctx, sessionID), dataset.Hash)

	report := export.Report{
		Title:         s.opts.ReportTitle,
		GeneratedAt:   s.opts.Now(),
		ReferenceDate: dataset.ReferenceDate,
		Invoices:      invoices,
		Metrics:       receivable.ComputeMetrics(invoices),
	}

	if err := writer.Write(out, report); err != nil {
		s.logger.Error(ctx, "Export failed",
			"format", writer.Extension(),
			"error", err,
		)
		return fmt.Errorf("export %s: %w", writer.Extension(), err)
	}

	s.logger.Info(ctx, "Export written",
		"format", writer.Extension(),
		"invoices", len(invoices),
	)
	return nil
}

func (s *receivableService) Stats(ctx context.Context) domain.StoreStats {
	return s.repo.Stats(ctx)
}
