// Package dataset loads the two source CSV tables into memory.
//
// Both tables are immutable after Load returns; every analysis reads the
// same slices for the lifetime of the run.
package dataset

// MatchRecord is one row of the matches table: a single IPL match.
type MatchRecord struct {
	ID            int    `csv:"id"`
	Season        string `csv:"season"`
	City          string `csv:"city"`
	Team1         string `csv:"team1"`
	Team2         string `csv:"team2"`
	Winner        string `csv:"winner"` // empty when the match had no result
	WinByRuns     int    `csv:"win_by_runs"`
	WinByWickets  int    `csv:"win_by_wickets"`
	PlayerOfMatch string `csv:"player_of_match"` // empty when no award was given
	TossWinner    string `csv:"toss_winner"`
	TossDecision  string `csv:"toss_decision"` // "bat" or "field"
}

// DeliveryRecord is one row of the deliveries table: a single ball bowled.
type DeliveryRecord struct {
	MatchID         int    `csv:"match_id"`
	Inning          int    `csv:"inning"`
	BattingTeam     string `csv:"batting_team"`
	BowlingTeam     string `csv:"bowling_team"`
	Batsman         string `csv:"batsman"`
	Bowler          string `csv:"bowler"`
	BatsmanRuns     int    `csv:"batsman_runs"`
	ExtraRuns       int    `csv:"extra_runs"`
	TotalRuns       int    `csv:"total_runs"`
	PlayerDismissed string `csv:"player_dismissed"` // empty when nobody was dismissed
	DismissalKind   string `csv:"dismissal_kind"`
}

// Dataset holds both loaded tables.
type Dataset struct {
	Matches    []MatchRecord
	Deliveries []DeliveryRecord
}
