// Package sample generates a realistic random IPL dataset for demos and
// local runs when the real Kaggle CSVs are not at hand.
package sample

// Config holds configuration for the sample dataset generator.
type Config struct {
	OutputDir  string // Directory the two CSV files are written to
	Matches    int    // Number of match rows to generate
	Deliveries int    // Number of delivery rows to generate
	Seed       int64  // Seed for the random source; fixed seed, fixed dataset
	Verbose    bool   // Enable verbose logging
}
