package aggregators

import (
	"context"
	"fmt"
	"io"

	"log-analyzer/internal/models"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/streams"

	"github.com/dustin/go-humanize"
)

const (
	defaultProgressEvery = 100_000
	maxLoggedLineLen     = 512
)

// OpenFunc opens a log file for line-by-line reading.
type OpenFunc func(ref models.LogFileRef) (io.ReadCloser, error)

//go:generate mockgen -source=stream_aggregator.go -destination=./mocks/stream_aggregator_mock.go -package=mocks
type StreamAggregator interface {
	// Aggregate reads every line of the log file, groups request times by URL and
	// fails with ErrParseQuality when parsed lines fall below 100-failurePercent percent.
	Aggregate(ctx context.Context, ref models.LogFileRef, failurePercent float64) (*models.URLAggregate, models.RunStats, error)
}

type streamAggregator struct {
	parser        parsers.LineParser
	open          OpenFunc
	progressEvery int
}

type Option func(*streamAggregator)

// WithOpenFunc replaces streams.OpenForRead.
func WithOpenFunc(open OpenFunc) Option {
	return func(a *streamAggregator) {
		a.open = open
	}
}

// WithProgressEvery sets how many lines are read between progress log entries.
func WithProgressEvery(n int) Option {
	return func(a *streamAggregator) {
		if n > 0 {
			a.progressEvery = n
		}
	}
}

func NewStreamAggregator(parser parsers.LineParser, opts ...Option) StreamAggregator {
	a := &streamAggregator{
		parser:        parser,
		open:          streams.OpenForRead,
		progressEvery: defaultProgressEvery,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *streamAggregator) Aggregate(ctx context.Context, ref models.LogFileRef, failurePercent float64) (*models.URLAggregate, models.RunStats, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldLogFile, ref.Path).Logger()

	var stats models.RunStats

	rc, err := a.open(ref)
	if err != nil {
		return nil, stats, err
	}
	cursor := streams.NewLineCursor(rc)
	defer cursor.Close()

	logger.Info().Bool("compressed", ref.IsCompressed()).Msg("started reading log file")

	agg := models.NewURLAggregate()
	for cursor.Next() {
		if err := ctx.Err(); err != nil {
			a.recordLines(stats)
			return nil, stats, err
		}

		stats.TotalLines++
		line := cursor.Line()
		parsed, ok := a.parser.Parse(line)
		if ok {
			stats.ParsedLines++
			stats.TotalTime += parsed.RequestTime
			agg.Add(parsed)
		} else {
			logger.Info().Str("line", truncate(line, maxLoggedLineLen)).Msg("unable to parse line")
		}

		if stats.TotalLines%a.progressEvery == 0 {
			logger.Info().Msgf("processed %s lines", humanize.Comma(int64(stats.TotalLines)))
		}
	}
	a.recordLines(stats)

	if err := cursor.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: %s after %d lines: %w", ErrReadFailed, ref.Name(), stats.TotalLines, err)
	}

	parsedPercent := stats.ParsedPercent()
	metricParsedPercent.Set(parsedPercent)

	logger.Info().
		Int(loggers.FieldTotalLines, stats.TotalLines).
		Int(loggers.FieldParsedLines, stats.ParsedLines).
		Float64(loggers.FieldParsedPercent, parsedPercent).
		Int("urls", agg.Len()).
		Msg("finished reading log file")

	if parsedPercent < 100-failurePercent {
		return nil, stats, fmt.Errorf("%w: parsed %d of %d lines (%.2f%%), required at least %.2f%%",
			ErrParseQuality, stats.ParsedLines, stats.TotalLines, parsedPercent, 100-failurePercent)
	}

	return agg, stats, nil
}

func (a *streamAggregator) recordLines(stats models.RunStats) {
	metricLinesTotal.WithLabelValues(valueParsed).Add(float64(stats.ParsedLines))
	metricLinesTotal.WithLabelValues(valueUnparsed).Add(float64(stats.TotalLines - stats.ParsedLines))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
