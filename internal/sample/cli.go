package sample

import "os"

// ShowHelp prints usage information for the sample generator tool.
func ShowHelp() {
	os.Stdout.WriteString(`IPL Sample Dataset Generator
============================

Generates random matches.csv and deliveries.csv files shaped like the
Kaggle IPL dataset, for demo runs of the analysis pipeline.

Usage:
  go run cmd/gen-sample/main.go [options]

Options:
  -out string
        Directory to write the two CSV files to (default ".")
  -matches int
        Number of match rows to generate (default 800)
  -deliveries int
        Number of delivery rows to generate (default 5000)
  -seed int
        Random seed; same seed yields the same dataset (default 42)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate the default dataset into the current directory
  go run cmd/gen-sample/main.go

  # Generate a larger dataset into ./data
  go run cmd/gen-sample/main.go -out data -matches 2000 -deliveries 20000
`)
}
