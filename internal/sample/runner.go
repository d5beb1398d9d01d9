package sample

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/rajshree017/IPL-Cricket-Analysis/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	csvFilePermission   = 0644
)

// Run generates the sample dataset and writes matches.csv and
// deliveries.csv into the configured output directory.
func Run(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "generating sample IPL dataset",
		logger.Int("matches", config.Matches),
		logger.Int("deliveries", config.Deliveries),
		logger.Any("seed", config.Seed),
		logger.String("outputDir", config.OutputDir))

	if err := os.MkdirAll(config.OutputDir, directoryPermission); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	rng := rand.New(rand.NewSource(config.Seed)) //nolint:gosec // deterministic sample data, not cryptography

	matches := generateMatches(rng, config.Matches)
	if err := writeCSV(filepath.Join(config.OutputDir, "matches.csv"), &matches); err != nil {
		return fmt.Errorf("write matches table: %w", err)
	}

	deliveries := generateDeliveries(rng, config.Deliveries, config.Matches)
	if err := writeCSV(filepath.Join(config.OutputDir, "deliveries.csv"), &deliveries); err != nil {
		return fmt.Errorf("write deliveries table: %w", err)
	}

	if config.Verbose {
		logger.Get().Debug(ctx, "sample dataset details",
			logger.Int("teams", len(teams)),
			logger.Int("players", len(players)))
	}

	logger.Get().Info(ctx, "sample dataset written",
		logger.String("matches", filepath.Join(config.OutputDir, "matches.csv")),
		logger.String("deliveries", filepath.Join(config.OutputDir, "deliveries.csv")))
	return nil
}

// writeCSV marshals one table to path using the same csv struct tags the
// loader reads back.
func writeCSV(path string, records interface{}) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, csvFilePermission)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return gocsv.MarshalFile(records, f)
}
