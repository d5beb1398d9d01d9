package service

import (
	"github.com/rajshree017/IPL-Cricket-Analysis/internal/adapters/chart"
	"github.com/rajshree017/IPL-Cricket-Analysis/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRenderer sets the chart renderer.
func WithRenderer(r *chart.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithDataPaths sets the two source table paths.
func WithDataPaths(matchesPath, deliveriesPath string) Option {
	return func(s *Service) {
		if matchesPath != "" {
			s.matchesPath = matchesPath
		}
		if deliveriesPath != "" {
			s.deliveriesPath = deliveriesPath
		}
	}
}

// WithTopTeams caps the most-successful-teams result.
func WithTopTeams(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topTeams = n
		}
	}
}

// WithTopScorers caps the top run scorers result.
func WithTopScorers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topScorers = n
		}
	}
}

// WithTopWicketTakers caps the top wicket takers result.
func WithTopWicketTakers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topWicketTakers = n
		}
	}
}

// WithTopAwards caps the player-of-the-match awards result.
func WithTopAwards(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topAwards = n
		}
	}
}

// WithMetricsFile enables the Prometheus textfile export after a run.
func WithMetricsFile(path string) Option {
	return func(s *Service) {
		s.metricsFile = path
	}
}
