package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log-analyzer/internal/aggregators"
	internalhttp "log-analyzer/internal/http"
	"log-analyzer/internal/parsers"
	"log-analyzer/internal/rankers"
	"log-analyzer/internal/renderers"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/selectors"
	"log-analyzer/internal/shared/configs"
	"log-analyzer/internal/shared/filestorages"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"
	"log-analyzer/internal/stores"
	"log-analyzer/internal/watchers"

	"golang.org/x/sync/errgroup"
)

const (
	appName         = "log-analyzer"
	shutdownTimeout = 10 * time.Second

	triggerCLI     = "cli"
	triggerStartup = "startup"
	triggerWatch   = "watch"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config        *configs.Config
	appLogger     loggers.Logger
	reportService reports.ReportService
	server        *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(loggers.Options{
		Level:      config.Log.Level,
		File:       config.Log.File,
		MaxSizeMB:  config.Log.MaxSizeMB,
		MaxBackups: config.Log.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().Str(loggers.FieldApp, appName).Logger()

	fileStorage, err := filestorages.NewFileStorage(config.Analyzer.ReportDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report storage: %w", err)
	}

	renderer, err := renderers.NewHTMLRenderer(config.Analyzer.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report renderer: %w", err)
	}

	reportService := reports.NewReportService(
		selectors.NewFileSelector(config.Analyzer.LogFilePrefix),
		aggregators.NewStreamAggregator(parsers.NewLineParser()),
		rankers.NewTopNRanker(),
		renderer,
		stores.NewReportStore(fileStorage),
		reports.Options{
			LogDir:         config.Analyzer.LogDir,
			ReportSize:     config.Analyzer.ReportSize,
			FailurePercent: config.Analyzer.FailurePercent,
		},
	)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           internalhttp.NewRouter(reportService, httpLogger),
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		reportService: reportService,
		server:        server,
	}, nil
}

func (app *App) Logger() loggers.Logger {
	return app.appLogger
}

// RunOnce performs a single report run and, when configured, dumps the run metrics to a textfile.
func (app *App) RunOnce(ctx context.Context) (reports.RunResult, error) {
	result, err := app.run(ctx, triggerCLI)
	app.writeMetricsTextfile()
	return result, err
}

// Serve exposes the HTTP API and, when enabled, reruns the report whenever the log directory changes.
// It returns once ctx is done and the server has shut down.
func (app *App) Serve(ctx context.Context) error {
	app.appLogger.Info().
		Msgf("starting %s on port %d (log_dir=%s, report_dir=%s, watch=%t)",
			appName,
			app.config.Server.Port,
			app.config.Analyzer.LogDir,
			app.config.Analyzer.ReportDir,
			app.config.Watch.Enabled)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		app.appLogger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		app.appLogger.Info().Msg("server stopped")
		return nil
	})

	if app.config.Watch.Enabled {
		watcher, err := watchers.NewDirWatcher(
			app.config.Analyzer.LogDir,
			watchers.Options{
				Prefix:   app.config.Analyzer.LogFilePrefix,
				Debounce: time.Duration(app.config.Watch.DebounceMs) * time.Millisecond,
			},
			func(ctx context.Context) { app.runInBackground(ctx, triggerWatch) },
		)
		if err != nil {
			app.appLogger.Warn().Err(err).Msg("log directory watcher disabled")
		} else {
			watcherLogger := app.appLogger.With().Str(loggers.FieldComponent, "watcher").Logger()
			group.Go(func() error {
				return watcher.Run(watcherLogger.WithContext(groupCtx))
			})
		}
	}

	group.Go(func() error {
		app.runInBackground(groupCtx, triggerStartup)
		return nil
	})

	return group.Wait()
}

// runInBackground runs the report for serve mode, where failures are logged and never stop the process.
func (app *App) runInBackground(ctx context.Context, trigger string) {
	if _, err := app.run(ctx, trigger); err != nil && ctx.Err() == nil {
		app.appLogger.Warn().Err(err).Str(loggers.FieldTrigger, trigger).Msg("background report run failed")
	}
}

func (app *App) run(ctx context.Context, trigger string) (reports.RunResult, error) {
	logger := app.appLogger.With().
		Str(loggers.FieldComponent, "report").
		Str(loggers.FieldTrigger, trigger).
		Logger()
	return app.reportService.Run(logger.WithContext(ctx))
}

func (app *App) writeMetricsTextfile() {
	path := app.config.Metrics.Textfile
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		app.appLogger.Warn().Err(err).Str("path", path).Msg("failed to write metrics textfile")
	}
}
