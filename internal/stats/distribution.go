// Package stats computes read-only aggregates over log snapshots. Nothing here
// holds state; every function works on the slice it is given.
package stats

import (
	"math"
	"sort"
)

// Bucket is one value of a distribution.
type Bucket struct {
	Value      string `json:"value"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Percent returns round(count/total*100), or 0 when total is 0.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// counter counts values while remembering first-seen order, which is used to
// break ties deterministically.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(v string) {
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c *counter) total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

// ranked returns values by count desc; equal counts keep first-seen order.
func (c *counter) ranked() []string {
	out := append([]string(nil), c.order...)
	sort.SliceStable(out, func(i, j int) bool { return c.counts[out[i]] > c.counts[out[j]] })
	return out
}

// Distribution counts each value and its share of the total, most frequent first.
func Distribution(values []string) []Bucket {
	c := newCounter()
	for _, v := range values {
		c.add(v)
	}
	total := c.total()
	out := make([]Bucket, 0, len(c.order))
	for _, v := range c.ranked() {
		out = append(out, Bucket{Value: v, Count: c.counts[v], Percentage: Percent(c.counts[v], total)})
	}
	return out
}

// Dominant returns the most frequent value (first-seen wins ties).
func Dominant(values []string) (Bucket, bool) {
	dist := Distribution(values)
	if len(dist) == 0 {
		return Bucket{}, false
	}
	return dist[0], true
}

// Mean returns the arithmetic mean rounded to one decimal, 0 for no values.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return round1(float64(sum) / float64(len(values)))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
