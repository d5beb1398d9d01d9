package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/adapters/chart"
	service "github.com/rajshree017/IPL-Cricket-Analysis/internal/app"
	"github.com/rajshree017/IPL-Cricket-Analysis/internal/config"
	"github.com/rajshree017/IPL-Cricket-Analysis/pkg/logger"
)

// Directory permission constants.
const (
	outputDirPermission = 0750
)

func main() {
	os.Exit(run())
}

// run is separate from main so deferred cleanups execute before the
// process exits with a status code.
func run() int {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Make sure the chart directory exists; an unwritable path is fatal.
	if err := os.MkdirAll(cfg.OutputDir, outputDirPermission); err != nil {
		loggerInstance.Error(ctx, "cannot create output directory", logger.String("output_dir", cfg.OutputDir), logger.Error(err))
		return 1
	}

	// Build and run the pipeline with configuration options
	svc := service.New(
		service.WithLogger(loggerInstance),
		service.WithDataPaths(cfg.MatchesPath, cfg.DeliveriesPath),
		service.WithRenderer(chart.New(chart.WithOutputDir(cfg.OutputDir))),
		service.WithTopTeams(cfg.TopTeams),
		service.WithTopScorers(cfg.TopScorers),
		service.WithTopWicketTakers(cfg.TopWicketTakers),
		service.WithTopAwards(cfg.TopAwards),
		service.WithMetricsFile(cfg.MetricsFile),
	)
	if err := svc.Run(ctx); err != nil {
		loggerInstance.Error(ctx, "analysis run failed", logger.Error(err))
		return 1
	}

	return 0
}
