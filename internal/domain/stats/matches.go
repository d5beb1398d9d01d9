package stats

import (
	"github.com/samber/lo"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/dataset"
)

// percent scales a ratio to a percentage.
const percent = 100

// TeamWins counts match wins per team, most successful first. Matches with
// no result (empty winner) are skipped.
func TeamWins(matches []dataset.MatchRecord, topN int) Result {
	winners := lo.FilterMap(matches, func(m dataset.MatchRecord, _ int) (string, bool) {
		return m.Winner, m.Winner != ""
	})

	c := newCounter()
	for _, w := range winners {
		c.add(w, 1)
	}
	return head(sortDesc(c.result()), topN)
}

// SeasonMatches counts matches per season, seasons ascending. The sum of
// all measures equals the number of rows in the matches table.
func SeasonMatches(matches []dataset.MatchRecord) Result {
	c := newCounter()
	for _, m := range matches {
		c.add(m.Season, 1)
	}
	return sortKeysAsc(c.result(), func(a, b string) bool { return a < b })
}

// TossImpact holds the two views of the toss analysis.
type TossImpact struct {
	// DecisionSplit counts matches per toss decision.
	DecisionSplit Result
	// WinCorrelation is, per toss decision, the percentage of matches in
	// which the toss winner also won the match.
	WinCorrelation Result
}

// ComputeTossImpact derives both toss views from the matches table.
func ComputeTossImpact(matches []dataset.MatchRecord) TossImpact {
	split := newCounter()
	converted := newCounter()
	for _, m := range matches {
		split.add(m.TossDecision, 1)
		if m.TossWinner == m.Winner && m.Winner != "" {
			converted.add(m.TossDecision, 1)
		}
	}

	splitResult := sortDesc(split.result())

	correlation := make(Result, 0, len(splitResult))
	for _, e := range splitResult {
		won, _ := lo.Find(converted.result(), func(c Entry) bool { return c.Key == e.Key })
		correlation = append(correlation, Entry{
			Key:   e.Key,
			Value: won.Value / e.Value * percent,
		})
	}

	return TossImpact{DecisionSplit: splitResult, WinCorrelation: correlation}
}

// PlayerOfMatchAwards counts player-of-the-match awards per player, most
// awarded first. Matches without an award are skipped.
func PlayerOfMatchAwards(matches []dataset.MatchRecord, topN int) Result {
	c := newCounter()
	for _, m := range matches {
		if m.PlayerOfMatch == "" {
			continue
		}
		c.add(m.PlayerOfMatch, 1)
	}
	return head(sortDesc(c.result()), topN)
}
