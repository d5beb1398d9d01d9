// Package service runs the analysis pipeline: load the two tables once,
// then execute the seven (aggregate, render) pairs in a fixed sequential
// order. The first failing step aborts the run; images written by earlier
// steps are left on disk.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/adapters/chart"
	"github.com/rajshree017/IPL-Cricket-Analysis/internal/dataset"
	"github.com/rajshree017/IPL-Cricket-Analysis/internal/domain/stats"
	"github.com/rajshree017/IPL-Cricket-Analysis/pkg/logger"
	"github.com/rajshree017/IPL-Cricket-Analysis/pkg/metrics"
)

// Fixed output filenames, one per analysis, overwritten on each run.
const (
	FileTeamWins         = "1_team_wins.png"
	FileSeasonMatches    = "2_season_matches.png"
	FileTopBatsmen       = "3_top_batsmen.png"
	FileTopBowlers       = "4_top_bowlers.png"
	FileTossImpact       = "5_toss_impact.png"
	FilePlayerOfMatch    = "6_player_of_match.png"
	FileRunsDistribution = "7_runs_distribution.png"
)

// Service orchestrates one pipeline run.
type Service struct {
	log      logger.Logger
	renderer *chart.Renderer

	matchesPath    string
	deliveriesPath string

	topTeams        int
	topScorers      int
	topWicketTakers int
	topAwards       int

	metricsFile string
}

// New creates a Service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		matchesPath:     "matches.csv",
		deliveriesPath:  "deliveries.csv",
		topTeams:        8,
		topScorers:      10,
		topWicketTakers: 10,
		topAwards:       10,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get()
	}
	if s.renderer == nil {
		s.renderer = chart.New()
	}

	return s
}

// Run executes the full pipeline. It returns the first load or render
// error; aggregation itself has no failure modes.
func (s *Service) Run(ctx context.Context) error {
	started := time.Now()
	runID := uuid.New().String()
	s.log.Info(ctx, "starting analysis run",
		logger.String("run_id", runID),
		logger.String("matches", s.matchesPath),
		logger.String("deliveries", s.deliveriesPath))

	ds, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := s.analyze(ctx, ds); err != nil {
		return err
	}

	s.logSummary(ctx, ds)

	metrics.RecordRunCompleted(time.Since(started))
	if s.metricsFile != "" {
		if err := metrics.WriteTextfile(s.metricsFile); err != nil {
			// Metrics export is best-effort; the charts are already on disk.
			s.log.Warn(ctx, "failed to write metrics textfile", logger.Error(err))
		}
	}

	s.log.Info(ctx, "analysis run completed",
		logger.String("run_id", runID),
		logger.String("duration", time.Since(started).String()))
	return nil
}

// load reads both tables and records dataset metrics.
func (s *Service) load(ctx context.Context) (*dataset.Dataset, error) {
	started := time.Now()
	ds, err := dataset.Load(ctx, s.matchesPath, s.deliveriesPath)
	if err != nil {
		metrics.RecordLoadError()
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	metrics.ObserveLoadDuration(time.Since(started))
	metrics.SetRowsLoaded("matches", len(ds.Matches))
	metrics.SetRowsLoaded("deliveries", len(ds.Deliveries))

	s.log.Info(ctx, "dataset loaded",
		logger.Int("matches", len(ds.Matches)),
		logger.Int("deliveries", len(ds.Deliveries)))
	return ds, nil
}

// analyze runs the seven analyses in their fixed order.
func (s *Service) analyze(ctx context.Context, ds *dataset.Dataset) error {
	steps := []struct {
		name      string
		kind      chart.Kind
		title     string
		filename  string
		aggregate func() stats.Result
	}{
		{
			name:     "team_wins",
			kind:     chart.KindBar,
			title:    "Most Successful IPL Teams (By Wins)",
			filename: FileTeamWins,
			aggregate: func() stats.Result {
				return stats.TeamWins(ds.Matches, s.topTeams)
			},
		},
		{
			name:     "season_matches",
			kind:     chart.KindLine,
			title:    "Number of Matches Per IPL Season",
			filename: FileSeasonMatches,
			aggregate: func() stats.Result {
				return stats.SeasonMatches(ds.Matches)
			},
		},
		{
			name:     "top_batsmen",
			kind:     chart.KindHorizontalBar,
			title:    fmt.Sprintf("Top %d Run Scorers in IPL History", s.topScorers),
			filename: FileTopBatsmen,
			aggregate: func() stats.Result {
				return stats.TopRunScorers(ds.Deliveries, s.topScorers)
			},
		},
		{
			name:     "top_bowlers",
			kind:     chart.KindBar,
			title:    fmt.Sprintf("Top %d Wicket Takers in IPL History", s.topWicketTakers),
			filename: FileTopBowlers,
			aggregate: func() stats.Result {
				return stats.TopWicketTakers(ds.Deliveries, s.topWicketTakers)
			},
		},
		{
			// Rendered separately below: the toss analysis has two views.
			name: "toss_impact",
		},
		{
			name:     "player_of_match",
			kind:     chart.KindHorizontalBar,
			title:    "Most Player of the Match Awards",
			filename: FilePlayerOfMatch,
			aggregate: func() stats.Result {
				return stats.PlayerOfMatchAwards(ds.Matches, s.topAwards)
			},
		},
		{
			name:     "runs_distribution",
			kind:     chart.KindBar,
			title:    "Runs Distribution per Ball",
			filename: FileRunsDistribution,
			aggregate: func() stats.Result {
				return stats.RunsDistribution(ds.Deliveries)
			},
		},
	}

	for _, step := range steps {
		if step.name == "toss_impact" {
			if err := s.runTossImpact(ctx, ds); err != nil {
				return err
			}
			continue
		}

		aggStarted := time.Now()
		result := step.aggregate()
		metrics.RecordAnalysisCompleted(step.name, time.Since(aggStarted))

		renderStarted := time.Now()
		if err := s.renderer.Render(ctx, step.kind, step.title, result, step.filename); err != nil {
			metrics.RecordRenderError()
			return fmt.Errorf("%s: %w", step.name, err)
		}
		metrics.RecordChartWritten(step.name, time.Since(renderStarted))

		s.log.Info(ctx, "chart saved",
			logger.String("analysis", step.name),
			logger.String("file", step.filename),
			logger.Int("keys", len(result)))
	}
	return nil
}

// runTossImpact handles the one analysis with two views in a single image.
func (s *Service) runTossImpact(ctx context.Context, ds *dataset.Dataset) error {
	aggStarted := time.Now()
	impact := stats.ComputeTossImpact(ds.Matches)
	metrics.RecordAnalysisCompleted("toss_impact", time.Since(aggStarted))

	renderStarted := time.Now()
	if err := s.renderer.RenderTossImpact(ctx, impact, FileTossImpact); err != nil {
		metrics.RecordRenderError()
		return fmt.Errorf("toss_impact: %w", err)
	}
	metrics.RecordChartWritten("toss_impact", time.Since(renderStarted))

	s.log.Info(ctx, "chart saved",
		logger.String("analysis", "toss_impact"),
		logger.String("file", FileTossImpact))
	return nil
}

// logSummary logs the headline dataset numbers the way the report ends.
func (s *Service) logSummary(ctx context.Context, ds *dataset.Dataset) {
	sum := stats.Summarize(ds)
	s.log.Info(ctx, "dataset summary",
		logger.Int("total_matches", sum.TotalMatches),
		logger.String("seasons", sum.FirstSeason+" - "+sum.LastSeason),
		logger.Int("total_runs", sum.TotalRuns),
		logger.Int("boundaries", sum.Boundaries),
		logger.String("most_successful_team", sum.MostSuccessfulTeam),
		logger.String("top_run_scorer", sum.TopRunScorer),
		logger.String("most_pom_awards", sum.MostAwardedPlayer))
}
