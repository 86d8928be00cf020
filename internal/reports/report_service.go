package reports

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"log-analyzer/internal/aggregators"
	"log-analyzer/internal/models"
	"log-analyzer/internal/rankers"
	"log-analyzer/internal/renderers"
	"log-analyzer/internal/selectors"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"
	"log-analyzer/internal/stores"
	"log-analyzer/internal/streams"
)

const (
	ReasonNoLogFile    = "no_log_file"
	ReasonReportExists = "report_exists"

	outcomeRan    = "ran"
	outcomeFailed = "failed"
)

// Options are the run parameters shared by every run of a ReportService.
type Options struct {
	LogDir         string
	ReportSize     int
	FailurePercent float64
}

// RunResult describes what one run did. When Ran is false, Reason says why the run was skipped.
type RunResult struct {
	RunID     string
	Ran       bool
	Reason    string
	ReportKey string
	LogFile   *models.LogFileRef
	Stats     models.RunStats
	Rows      []models.ReportRow
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// Run builds the report for the newest log file unless it already exists.
	// Concurrent calls are serialized.
	Run(ctx context.Context) (RunResult, error)
	// OpenReport returns a stored report by its date ("YYYY.MM.DD").
	OpenReport(ctx context.Context, date string) (io.ReadCloser, error)
}

type reportService struct {
	selector   selectors.FileSelector
	aggregator aggregators.StreamAggregator
	ranker     rankers.TopNRanker
	renderer   renderers.ReportRenderer
	store      stores.ReportStore
	opts       Options

	mu sync.Mutex
}

func NewReportService(
	selector selectors.FileSelector,
	aggregator aggregators.StreamAggregator,
	ranker rankers.TopNRanker,
	renderer renderers.ReportRenderer,
	store stores.ReportStore,
	opts Options,
) ReportService {
	return &reportService{
		selector:   selector,
		aggregator: aggregator,
		ranker:     ranker,
		renderer:   renderer,
		store:      store,
		opts:       opts,
	}
}

func (s *reportService) Run(ctx context.Context) (RunResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	result, err := s.run(ctx)
	result.RunID = runID

	outcome, errorCode := outcomeOf(result, err)
	metricRunsTotal.WithLabelValues(outcome, errorCode).Inc()
	metricRunDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		logger.Error().Err(err).Str(loggers.FieldErrorCode, errorCode).Dur(loggers.FieldDuration, time.Since(start)).Msg("report run failed")
		return result, err
	}
	logger.Info().Str("outcome", outcome).Dur(loggers.FieldDuration, time.Since(start)).Msg("report run finished")
	return result, nil
}

func (s *reportService) run(ctx context.Context) (RunResult, error) {
	logger := loggers.Ctx(ctx)

	ref, err := s.selector.FindLatest(ctx, s.opts.LogDir)
	if err != nil {
		if errors.Is(err, selectors.ErrDirectoryNotFound) {
			return RunResult{}, errLogDirNotFound(err)
		}
		return RunResult{}, errInternalLogDirScanFailed(err)
	}
	if ref == nil {
		logger.Info().Str("log_dir", s.opts.LogDir).Msg("no log file to process")
		return RunResult{Reason: ReasonNoLogFile}, nil
	}

	result := RunResult{LogFile: ref, ReportKey: models.ReportKey(ref.Date)}
	logger.Info().Str(loggers.FieldLogFile, ref.Path).Str(loggers.FieldReportKey, result.ReportKey).Msg("found latest log file")

	exists, err := s.store.Exists(ctx, ref.Date)
	if err != nil {
		return result, errInternalReportStoreFailed(err)
	}
	if exists {
		logger.Info().Str(loggers.FieldReportKey, result.ReportKey).Msg("report already exists, nothing to do")
		result.Reason = ReasonReportExists
		return result, nil
	}

	agg, stats, err := s.aggregator.Aggregate(ctx, *ref, s.opts.FailurePercent)
	result.Stats = stats
	if err != nil {
		switch {
		case errors.Is(err, aggregators.ErrParseQuality):
			return result, errParseQuality(err)
		case errors.Is(err, streams.ErrOpenFailed), errors.Is(err, aggregators.ErrReadFailed):
			return result, errInternalLogReadFailed(err)
		default:
			// context cancellation is passed through untouched
			return result, err
		}
	}

	result.Rows = s.ranker.Rank(agg, stats, s.opts.ReportSize)

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, result.Rows); err != nil {
		return result, errInternalRenderFailed(err)
	}

	if _, err := s.store.Put(ctx, ref.Date, &buf); err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExists) {
			logger.Info().Str(loggers.FieldReportKey, result.ReportKey).Msg("report was written concurrently, keeping it")
			result.Reason = ReasonReportExists
			return result, nil
		}
		return result, errInternalReportStoreFailed(err)
	}

	result.Ran = true
	logger.Info().
		Str(loggers.FieldReportKey, result.ReportKey).
		Int("rows", len(result.Rows)).
		Msg("report written")
	return result, nil
}

func (s *reportService) OpenReport(ctx context.Context, date string) (io.ReadCloser, error) {
	reportDate, err := models.ParseReportDate(date)
	if err != nil {
		return nil, errInvalidReportDate(err)
	}

	rc, err := s.store.Get(ctx, reportDate)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return nil, errReportNotFound(err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return rc, nil
}

func outcomeOf(result RunResult, err error) (outcome string, errorCode string) {
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return outcomeFailed, svcErr.Code
		}
		return outcomeFailed, metrics.ValueNoError
	}
	if result.Ran {
		return outcomeRan, metrics.ValueNoError
	}
	return result.Reason, metrics.ValueNoError
}
