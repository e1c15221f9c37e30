package stats

import (
	"fmt"
	"sort"
)

// Streak is the longest run of one value.
type Streak struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// LongestStreak finds the longest run of consecutive identical values in
// insertion order. On ties the first run found wins.
func LongestStreak(values []string) Streak {
	var best, cur Streak
	for i, v := range values {
		if i > 0 && v == values[i-1] {
			cur.Count++
		} else {
			cur = Streak{Value: v, Count: 1}
		}
		if cur.Count > best.Count {
			best = cur
		}
	}
	return best
}

// Transition counts adjacent changes From -> To.
type Transition struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// TopTransitions counts adjacent pairs with differing values and returns the
// n most frequent; ties keep first-encountered order.
func TopTransitions(values []string, n int) []Transition {
	order := []Transition{}
	index := make(map[[2]string]int)
	for i := 1; i < len(values); i++ {
		prev, curr := values[i-1], values[i]
		if prev == curr {
			continue
		}
		key := [2]string{prev, curr}
		if idx, ok := index[key]; ok {
			order[idx].Count++
			continue
		}
		index[key] = len(order)
		order = append(order, Transition{From: prev, To: curr, Count: 1})
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].Count > order[j].Count })
	if n >= 0 && len(order) > n {
		order = order[:n]
	}
	return order
}

const insufficientData = "insufficient data"

// Interval is the mean gap between consecutive events.
type Interval struct {
	Sufficient bool   `json:"sufficient"`
	Millis     int64  `json:"milliseconds"`
	Hours      int64  `json:"hours"`
	Minutes    int64  `json:"minutes"`
	Formatted  string `json:"formatted"`
}

// AverageInterval sorts the timestamps and returns the mean delta. Fewer than
// two timestamps yield an Interval reporting insufficient data.
func AverageInterval(timestamps []int64) Interval {
	if len(timestamps) < 2 {
		return Interval{Formatted: insufficientData}
	}
	ts := append([]int64(nil), timestamps...)
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })

	// sum of consecutive deltas telescopes to last-first
	mean := (ts[len(ts)-1] - ts[0]) / int64(len(ts)-1)
	hours := mean / 3_600_000
	minutes := (mean % 3_600_000) / 60_000
	return Interval{
		Sufficient: true,
		Millis:     mean,
		Hours:      hours,
		Minutes:    minutes,
		Formatted:  fmt.Sprintf("%d:%02d", hours, minutes),
	}
}
