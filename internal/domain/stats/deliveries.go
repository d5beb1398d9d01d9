package stats

import (
	"strconv"

	linq "github.com/ahmetb/go-linq/v3"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/dataset"
)

// bowlerCredited lists the dismissal kinds attributed to the bowler.
// Run outs, retired hurt, and obstructing-the-field do not count as wickets
// taken by the bowler.
var bowlerCredited = map[string]bool{
	"caught":            true,
	"bowled":            true,
	"lbw":               true,
	"stumped":           true,
	"caught and bowled": true,
	"hit wicket":        true,
}

// TopRunScorers sums runs off the bat per batsman, highest aggregate first.
func TopRunScorers(deliveries []dataset.DeliveryRecord, topN int) Result {
	c := newCounter()
	for _, d := range deliveries {
		c.add(d.Batsman, float64(d.BatsmanRuns))
	}
	return head(sortDesc(c.result()), topN)
}

// TopWicketTakers counts bowler-credited dismissals per bowler, highest
// first.
func TopWicketTakers(deliveries []dataset.DeliveryRecord, topN int) Result {
	var wicketBalls []dataset.DeliveryRecord
	linq.From(deliveries).
		WhereT(func(d dataset.DeliveryRecord) bool {
			return d.PlayerDismissed != "" && bowlerCredited[d.DismissalKind]
		}).
		ToSlice(&wicketBalls)

	c := newCounter()
	for _, d := range wicketBalls {
		c.add(d.Bowler, 1)
	}
	return head(sortDesc(c.result()), topN)
}

// RunsDistribution counts balls per runs-off-the-bat value, run values
// ascending.
func RunsDistribution(deliveries []dataset.DeliveryRecord) Result {
	c := newCounter()
	for _, d := range deliveries {
		c.add(strconv.Itoa(d.BatsmanRuns), 1)
	}
	return sortKeysAsc(c.result(), func(a, b string) bool {
		ai, _ := strconv.Atoi(a)
		bi, _ := strconv.Atoi(b)
		return ai < bi
	})
}
