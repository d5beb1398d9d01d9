package main

import (
	"context"
	"flag"
	"os"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/sample"
	"github.com/rajshree017/IPL-Cricket-Analysis/pkg/logger"
)

// Default configuration constants.
const (
	defaultMatches    = 800
	defaultDeliveries = 5000
	defaultSeed       = 42
)

func main() {
	var (
		outputDir  = flag.String("out", ".", "Directory to write matches.csv and deliveries.csv to")
		matches    = flag.Int("matches", defaultMatches, "Number of match rows to generate")
		deliveries = flag.Int("deliveries", defaultDeliveries, "Number of delivery rows to generate")
		seed       = flag.Int64("seed", defaultSeed, "Random seed; same seed yields the same dataset")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sample.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	config := &sample.Config{
		OutputDir:  *outputDir,
		Matches:    *matches,
		Deliveries: *deliveries,
		Seed:       *seed,
		Verbose:    *verbose,
	}

	if err := sample.Run(context.Background(), config); err != nil {
		os.Stderr.WriteString("sample generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
