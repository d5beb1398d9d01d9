// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Default top-N limits. Teams default to 8 because only eight franchises
// fit readably on one bar chart; ranked player analyses use 10.
const (
	defaultTopTeams        = 8
	defaultTopScorers      = 10
	defaultTopWicketTakers = 10
	defaultTopAwards       = 10
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MatchesPath and DeliveriesPath locate the two source CSV tables.
	MatchesPath    string `koanf:"matches_path"`
	DeliveriesPath string `koanf:"deliveries_path"`

	// OutputDir is where the seven chart PNGs are written.
	OutputDir string `koanf:"output_dir"`

	// TopTeams caps the most-successful-teams chart.
	TopTeams int `koanf:"top_teams"`

	// TopScorers caps the top run scorers chart.
	TopScorers int `koanf:"top_scorers"`

	// TopWicketTakers caps the top wicket takers chart.
	TopWicketTakers int `koanf:"top_wicket_takers"`

	// TopAwards caps the player-of-the-match awards chart.
	TopAwards int `koanf:"top_awards"`

	// MetricsFile, when set, receives run metrics in Prometheus text
	// exposition format (textfile collector). Empty disables the export.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:        "info",
		MatchesPath:     "matches.csv",
		DeliveriesPath:  "deliveries.csv",
		OutputDir:       ".",
		TopTeams:        defaultTopTeams,
		TopScorers:      defaultTopScorers,
		TopWicketTakers: defaultTopWicketTakers,
		TopAwards:       defaultTopAwards,
	}
	return c
}
