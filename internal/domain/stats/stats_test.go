package stats_test

import (
	"testing"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/dataset"
	"github.com/rajshree017/IPL-Cricket-Analysis/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func match(season, winner, tossWinner, decision, playerOfMatch string) dataset.MatchRecord {
	return dataset.MatchRecord{
		Season:        season,
		Winner:        winner,
		TossWinner:    tossWinner,
		TossDecision:  decision,
		PlayerOfMatch: playerOfMatch,
	}
}

func ball(batsman string, runs int, bowler, dismissed, kind string) dataset.DeliveryRecord {
	return dataset.DeliveryRecord{
		Batsman:         batsman,
		BatsmanRuns:     runs,
		TotalRuns:       runs,
		Bowler:          bowler,
		PlayerDismissed: dismissed,
		DismissalKind:   kind,
	}
}

func TestTeamWins(t *testing.T) {
	Convey("Given a matches table where A wins twice and B once", t, func() {
		matches := []dataset.MatchRecord{
			match("2008", "A", "A", "bat", "p1"),
			match("2008", "B", "A", "field", "p2"),
			match("2009", "A", "B", "bat", "p1"),
		}

		Convey("When counting team wins", func() {
			result := stats.TeamWins(matches, 8)

			Convey("Then A should rank first with 2 wins and B second with 1", func() {
				So(len(result), ShouldEqual, 2)
				So(result[0].Key, ShouldEqual, "A")
				So(result[0].Value, ShouldEqual, 2)
				So(result[1].Key, ShouldEqual, "B")
				So(result[1].Value, ShouldEqual, 1)
			})
		})

		Convey("When a match has no result", func() {
			result := stats.TeamWins(append(matches, match("2009", "", "B", "field", "")), 8)

			Convey("Then the empty winner should not appear as a key", func() {
				So(result.Keys(), ShouldNotContain, "")
				So(len(result), ShouldEqual, 2)
			})
		})

		Convey("When two teams are tied", func() {
			result := stats.TeamWins([]dataset.MatchRecord{
				match("2008", "B", "A", "bat", ""),
				match("2008", "A", "A", "bat", ""),
				match("2008", "A", "A", "bat", ""),
				match("2008", "B", "A", "bat", ""),
			}, 8)

			Convey("Then input order should break the tie", func() {
				So(result[0].Key, ShouldEqual, "B")
				So(result[1].Key, ShouldEqual, "A")
			})
		})

		Convey("When more teams won than the limit", func() {
			matches := []dataset.MatchRecord{
				match("2008", "A", "A", "bat", ""),
				match("2008", "B", "A", "bat", ""),
				match("2008", "C", "A", "bat", ""),
			}
			result := stats.TeamWins(matches, 2)

			Convey("Then the result should be truncated", func() {
				So(len(result), ShouldEqual, 2)
			})
		})
	})
}

func TestSeasonMatches(t *testing.T) {
	Convey("Given matches across several seasons", t, func() {
		matches := []dataset.MatchRecord{
			match("2010", "A", "A", "bat", ""),
			match("2008", "B", "A", "bat", ""),
			match("2008", "A", "A", "bat", ""),
			match("2009", "", "A", "bat", ""),
		}

		Convey("When counting matches per season", func() {
			result := stats.SeasonMatches(matches)

			Convey("Then seasons should be ascending with correct counts", func() {
				So(result.Keys(), ShouldResemble, []string{"2008", "2009", "2010"})
				So(result.Values(), ShouldResemble, []float64{2, 1, 1})
			})

			Convey("And the counts should sum to the table row count", func() {
				So(result.Total(), ShouldEqual, float64(len(matches)))
			})
		})
	})
}

func TestTopRunScorers(t *testing.T) {
	Convey("Given deliveries for three batsmen", t, func() {
		deliveries := []dataset.DeliveryRecord{
			ball("X", 4, "b1", "", ""),
			ball("Y", 6, "b1", "", ""),
			ball("X", 2, "b2", "", ""),
			ball("Z", 1, "b2", "", ""),
			ball("Y", 1, "b1", "", ""),
		}

		Convey("When summing runs per batsman", func() {
			result := stats.TopRunScorers(deliveries, 10)

			Convey("Then batsmen should be ordered by aggregate runs", func() {
				So(result.Keys(), ShouldResemble, []string{"Y", "X", "Z"})
				So(result.Values(), ShouldResemble, []float64{7, 6, 1})
			})
		})

		Convey("When limited to the top two", func() {
			result := stats.TopRunScorers(deliveries, 2)

			Convey("Then only two entries should remain", func() {
				So(len(result), ShouldEqual, 2)
				So(result[0].Key, ShouldEqual, "Y")
			})
		})
	})
}

func TestTopWicketTakers(t *testing.T) {
	Convey("Given deliveries with mixed dismissal kinds", t, func() {
		deliveries := []dataset.DeliveryRecord{
			ball("X", 0, "A", "X", "bowled"),
			ball("Y", 0, "A", "Y", "caught"),
			ball("Z", 0, "B", "Z", "run out"),
			ball("X", 0, "B", "X", "lbw"),
			ball("Y", 1, "B", "", ""),
		}

		Convey("When counting wickets per bowler", func() {
			result := stats.TopWicketTakers(deliveries, 10)

			Convey("Then only bowler-credited dismissals should count", func() {
				So(result.Keys(), ShouldResemble, []string{"A", "B"})
				So(result.Values(), ShouldResemble, []float64{2, 1})
			})
		})
	})
}

func TestComputeTossImpact(t *testing.T) {
	Convey("Given four matches with known toss outcomes", t, func() {
		matches := []dataset.MatchRecord{
			match("2008", "A", "A", "bat", ""),   // toss winner won
			match("2008", "B", "A", "bat", ""),   // toss winner lost
			match("2008", "A", "A", "field", ""), // toss winner won
			match("2008", "B", "A", "field", ""), // toss winner lost
		}

		Convey("When computing the toss impact", func() {
			impact := stats.ComputeTossImpact(matches)

			Convey("Then the decision split should count both categories", func() {
				So(len(impact.DecisionSplit), ShouldEqual, 2)
				So(impact.DecisionSplit.Total(), ShouldEqual, 4)
			})

			Convey("Then each decision should convert the toss half the time", func() {
				for _, e := range impact.WinCorrelation {
					So(e.Value, ShouldEqual, 50)
				}
			})

			Convey("Then both views should share keys in the same order", func() {
				So(impact.WinCorrelation.Keys(), ShouldResemble, impact.DecisionSplit.Keys())
			})
		})

		Convey("When no toss winner ever wins the match", func() {
			impact := stats.ComputeTossImpact([]dataset.MatchRecord{
				match("2008", "B", "A", "bat", ""),
			})

			Convey("Then the correlation should be zero, not missing", func() {
				So(len(impact.WinCorrelation), ShouldEqual, 1)
				So(impact.WinCorrelation[0].Value, ShouldEqual, 0)
			})
		})
	})
}

func TestPlayerOfMatchAwards(t *testing.T) {
	Convey("Given matches with repeat award winners", t, func() {
		matches := []dataset.MatchRecord{
			match("2008", "A", "A", "bat", "V Kohli"),
			match("2008", "B", "A", "bat", "MS Dhoni"),
			match("2009", "A", "A", "bat", "V Kohli"),
			match("2009", "A", "A", "bat", ""),
		}

		Convey("When counting awards", func() {
			result := stats.PlayerOfMatchAwards(matches, 10)

			Convey("Then players should be ranked by award count, no-award rows skipped", func() {
				So(result.Keys(), ShouldResemble, []string{"V Kohli", "MS Dhoni"})
				So(result.Values(), ShouldResemble, []float64{2, 1})
			})
		})
	})
}

func TestRunsDistribution(t *testing.T) {
	Convey("Given batsman X scoring runs 4, 1, 0, 6", t, func() {
		deliveries := []dataset.DeliveryRecord{
			ball("X", 4, "b", "", ""),
			ball("X", 1, "b", "", ""),
			ball("X", 0, "b", "", ""),
			ball("X", 6, "b", "", ""),
		}

		Convey("When computing the runs distribution", func() {
			result := stats.RunsDistribution(deliveries)

			Convey("Then each run value should appear once, ordered numerically", func() {
				So(result.Keys(), ShouldResemble, []string{"0", "1", "4", "6"})
				So(result.Values(), ShouldResemble, []float64{1, 1, 1, 1})
				So(result.Total(), ShouldEqual, 4)
			})
		})

		Convey("When run values reach double digits", func() {
			result := stats.RunsDistribution(append(deliveries, ball("X", 10, "b", "", "")))

			Convey("Then ordering should be numeric, not lexicographic", func() {
				So(result.Keys(), ShouldResemble, []string{"0", "1", "4", "6", "10"})
			})
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given a small dataset", t, func() {
		ds := &dataset.Dataset{
			Matches: []dataset.MatchRecord{
				match("2008", "A", "A", "bat", "V Kohli"),
				match("2010", "A", "B", "field", "V Kohli"),
				match("2009", "B", "B", "bat", "MS Dhoni"),
			},
			Deliveries: []dataset.DeliveryRecord{
				ball("X", 4, "b", "", ""),
				ball("Y", 6, "b", "", ""),
				ball("X", 1, "b", "", ""),
			},
		}

		Convey("When summarizing", func() {
			s := stats.Summarize(ds)

			Convey("Then the headline numbers should be derived from both tables", func() {
				So(s.TotalMatches, ShouldEqual, 3)
				So(s.FirstSeason, ShouldEqual, "2008")
				So(s.LastSeason, ShouldEqual, "2010")
				So(s.TotalRuns, ShouldEqual, 11)
				So(s.Boundaries, ShouldEqual, 2)
				So(s.MostSuccessfulTeam, ShouldEqual, "A")
				So(s.TopRunScorer, ShouldEqual, "Y")
				So(s.MostAwardedPlayer, ShouldEqual, "V Kohli")
			})
		})

		Convey("When the dataset is empty", func() {
			s := stats.Summarize(&dataset.Dataset{})

			Convey("Then all fields should be zero values", func() {
				So(s.TotalMatches, ShouldEqual, 0)
				So(s.FirstSeason, ShouldBeEmpty)
				So(s.MostSuccessfulTeam, ShouldBeEmpty)
			})
		})
	})
}
