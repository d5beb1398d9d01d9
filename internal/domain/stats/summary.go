package stats

import (
	"github.com/samber/lo"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/dataset"
)

// Summary condenses the whole dataset into the headline numbers logged at
// the end of a run.
type Summary struct {
	TotalMatches       int
	FirstSeason        string
	LastSeason         string
	TotalRuns          int
	Boundaries         int // balls scoring 4 or 6 off the bat
	MostSuccessfulTeam string
	TopRunScorer       string
	MostAwardedPlayer  string
}

// Summarize computes the dataset summary. Empty tables yield zero values.
func Summarize(ds *dataset.Dataset) Summary {
	s := Summary{TotalMatches: len(ds.Matches)}

	seasons := lo.Uniq(lo.Map(ds.Matches, func(m dataset.MatchRecord, _ int) string {
		return m.Season
	}))
	if len(seasons) > 0 {
		s.FirstSeason = lo.Min(seasons)
		s.LastSeason = lo.Max(seasons)
	}

	s.TotalRuns = lo.SumBy(ds.Deliveries, func(d dataset.DeliveryRecord) int {
		return d.TotalRuns
	})
	s.Boundaries = lo.CountBy(ds.Deliveries, func(d dataset.DeliveryRecord) bool {
		return d.BatsmanRuns == 4 || d.BatsmanRuns == 6
	})

	if wins := TeamWins(ds.Matches, 1); len(wins) > 0 {
		s.MostSuccessfulTeam = wins[0].Key
	}
	if scorers := TopRunScorers(ds.Deliveries, 1); len(scorers) > 0 {
		s.TopRunScorer = scorers[0].Key
	}
	if awards := PlayerOfMatchAwards(ds.Matches, 1); len(awards) > 0 {
		s.MostAwardedPlayer = awards[0].Key
	}

	return s
}
