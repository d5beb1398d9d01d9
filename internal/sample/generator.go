package sample

import (
	"math/rand"
	"strconv"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/dataset"
)

// Pools the generator draws from. Kept small so repeat winners and repeat
// award holders show up even in small datasets.
var (
	teams = []string{
		"Mumbai Indians", "Chennai Super Kings", "Royal Challengers Bangalore",
		"Kolkata Knight Riders", "Delhi Capitals", "Sunrisers Hyderabad",
		"Rajasthan Royals", "Punjab Kings",
	}
	cities = []string{"Mumbai", "Chennai", "Bangalore", "Kolkata", "Delhi", "Hyderabad"}
	players = []string{
		"V Kohli", "MS Dhoni", "RG Sharma", "AB de Villiers", "SK Raina",
		"KA Pollard", "SR Watson", "DA Warner", "RR Pant", "HH Pandya",
	}
	dismissalKinds = []string{"caught", "bowled", "lbw", "run out", "stumped"}
)

// Season range covered by the generated matches.
const (
	firstSeason = 2008
	lastSeason  = 2022
)

// Delivery outcome weights: runs off the bat 0,1,2,3,4,6.
var (
	runValues  = []int{0, 1, 2, 3, 4, 6}
	runWeights = []float64{0.35, 0.30, 0.12, 0.03, 0.12, 0.08}
)

// dismissalProbability is the share of balls on which a wicket falls.
const dismissalProbability = 0.05

// weightedRun picks a runs-off-the-bat value following runWeights.
func weightedRun(rng *rand.Rand) int {
	roll := rng.Float64()
	var acc float64
	for i, w := range runWeights {
		acc += w
		if roll < acc {
			return runValues[i]
		}
	}
	return runValues[len(runValues)-1]
}

// generateMatches creates n random match rows.
func generateMatches(rng *rand.Rand, n int) []dataset.MatchRecord {
	matches := make([]dataset.MatchRecord, n)
	for i := range matches {
		team1 := teams[rng.Intn(len(teams))]
		team2 := teams[rng.Intn(len(teams))]
		winner := team1
		if rng.Intn(2) == 1 {
			winner = team2
		}

		decision := "bat"
		if rng.Intn(2) == 1 {
			decision = "field"
		}
		tossWinner := team1
		if rng.Intn(2) == 1 {
			tossWinner = team2
		}

		matches[i] = dataset.MatchRecord{
			ID:            i + 1,
			Season:        strconv.Itoa(firstSeason + rng.Intn(lastSeason-firstSeason+1)),
			City:          cities[rng.Intn(len(cities))],
			Team1:         team1,
			Team2:         team2,
			Winner:        winner,
			WinByRuns:     rng.Intn(100),
			WinByWickets:  rng.Intn(10),
			PlayerOfMatch: players[rng.Intn(len(players))],
			TossWinner:    tossWinner,
			TossDecision:  decision,
		}
	}
	return matches
}

// generateDeliveries creates n random delivery rows referencing match ids
// in [1, numMatches].
func generateDeliveries(rng *rand.Rand, n, numMatches int) []dataset.DeliveryRecord {
	deliveries := make([]dataset.DeliveryRecord, n)
	for i := range deliveries {
		batsman := players[rng.Intn(len(players))]
		runs := weightedRun(rng)

		var extras int
		switch roll := rng.Float64(); {
		case roll < 0.05:
			extras = 2
		case roll < 0.15:
			extras = 1
		}

		d := dataset.DeliveryRecord{
			MatchID:     rng.Intn(numMatches) + 1,
			Inning:      rng.Intn(2) + 1,
			BattingTeam: teams[rng.Intn(len(teams))],
			BowlingTeam: teams[rng.Intn(len(teams))],
			Batsman:     batsman,
			Bowler:      players[rng.Intn(len(players))],
			BatsmanRuns: runs,
			ExtraRuns:   extras,
			TotalRuns:   runs + extras,
		}
		if rng.Float64() < dismissalProbability {
			d.PlayerDismissed = batsman
			d.DismissalKind = dismissalKinds[rng.Intn(len(dismissalKinds))]
		}
		deliveries[i] = d
	}
	return deliveries
}
