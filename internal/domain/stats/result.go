// Package stats implements the seven aggregations over the loaded tables.
//
// Every aggregator is a pure function: same input slices, same output
// Result. Grouping preserves first-seen input order so that descending
// sorts break ties deterministically.
package stats

import (
	"sort"
)

// Entry is one key of an aggregation: a categorical key and its measure.
type Entry struct {
	Key   string
	Value float64
}

// Result is an ordered aggregation outcome. Keys are unique; ordering is
// significant for ranked results.
type Result []Entry

// Keys returns the keys in result order.
func (r Result) Keys() []string {
	keys := make([]string, len(r))
	for i, e := range r {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the measures in result order.
func (r Result) Values() []float64 {
	values := make([]float64, len(r))
	for i, e := range r {
		values[i] = e.Value
	}
	return values
}

// Total returns the sum of all measures.
func (r Result) Total() float64 {
	var total float64
	for _, e := range r {
		total += e.Value
	}
	return total
}

// counter accumulates measures per key, remembering first-seen order.
type counter struct {
	index   map[string]int
	entries Result
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(key string, delta float64) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Value += delta
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key, Value: delta})
}

// result returns the accumulated entries in first-seen order.
func (c *counter) result() Result {
	return c.entries
}

// sortDesc sorts by measure descending; ties keep first-seen order.
func sortDesc(r Result) Result {
	sort.SliceStable(r, func(i, j int) bool { return r[i].Value > r[j].Value })
	return r
}

// sortKeysAsc sorts by key ascending using less.
func sortKeysAsc(r Result, less func(a, b string) bool) Result {
	sort.SliceStable(r, func(i, j int) bool { return less(r[i].Key, r[j].Key) })
	return r
}

// head truncates to at most n entries.
func head(r Result, n int) Result {
	if n > 0 && len(r) > n {
		return r[:n]
	}
	return r
}
