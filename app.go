package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type AppProvider interface {
	Run() error
}

type App struct {
	logger   *zap.Logger
	config   *Config
	catalog  *Catalog
	out      io.Writer
	cleanups []func()
}

// NewApp provides an instance of App.
func NewApp() (AppProvider, error) {
	config, err := LoadAndInitConfigs(DefaultConfigFile, DefaultEnvFile, GitCommit, GitTag, BuildTime)
	if err != nil {
		return nil, fmt.Errorf("failed to setup app configuration: %s", err)
	}

	// ensure the logs folder exists and Setup the logging module.
	err = os.MkdirAll(filepath.Dir(config.LogFile), 0o700)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging folder: %s", err)
	}
	logFile, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging file: %s", err)
	}
	closer := func() {
		if cerr := logFile.Close(); cerr != nil {
			log.Println("error during closing of log file:", cerr)
		}
	}
	logger, flusher := SetupLogging(config, logFile, NewClock(config.IsProduction))

	app := newApp(logger, config, NewIDsHandler(), os.Stdout)
	app.cleanups = append(app.cleanups,
		func() {
			if ferr := flusher(); ferr != nil {
				log.Println("error during flushing any buffered log entries:", ferr)
			}
		},
		closer,
	)
	return app, nil
}

func newApp(logger *zap.Logger, config *Config, ids UIDHandler, out io.Writer) *App {
	return &App{
		logger:  logger,
		config:  config,
		catalog: NewCatalog(logger, ids, config.Catalog.IDPrefix),
		out:     out,
	}
}

// Run loads the configured catalog file and renders the accepted entries.
func (app *App) Run() error {
	defer app.Clean()

	path := app.config.Catalog.FilePath
	app.logger.Info("catalog loading", zap.String("catalog.file", path))
	file, err := os.Open(path)
	if err != nil {
		app.logger.Error("catalog file could not be opened", zap.String("catalog.file", path), zap.Error(err))
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	report, err := LoadCatalog(file, app.catalog)
	if err != nil {
		app.logger.Error("catalog file could not be parsed", zap.String("catalog.file", path), zap.Error(err))
		return err
	}

	for _, r := range report.Rejected {
		app.logger.Warn("catalog entry rejected",
			zap.Int("entry.index", r.Index),
			zap.Int("entry.line", r.Line),
			zap.String("entry.field", FieldOf(r.Err)),
			zap.Error(r.Err),
		)
	}
	app.logger.Info("catalog loaded",
		zap.Int("catalog.accepted", len(report.Accepted)),
		zap.Int("catalog.rejected", len(report.Rejected)),
	)

	if err := RenderCatalog(app.out, app.catalog, app.config.Catalog.OutputFormat); err != nil {
		app.logger.Error("catalog rendering failed", zap.String("format", app.config.Catalog.OutputFormat), zap.Error(err))
		return fmt.Errorf("failed to render catalog: %w", err)
	}

	if app.config.Catalog.Strict && len(report.Rejected) > 0 {
		return fmt.Errorf("%d catalog entries rejected in strict mode", len(report.Rejected))
	}
	return nil
}

// Clean calls all registered cleanups functions.
func (app *App) Clean() {
	for _, f := range app.cleanups {
		f()
	}
}
