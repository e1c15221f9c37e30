package stats

import "fmt"

const (
	hueBucketWidth = 30
	hueBuckets     = 360 / hueBucketWidth
)

// HueBucket counts hues in [Start, End).
type HueBucket struct {
	Range string `json:"range"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Count int    `json:"count"`
}

// NormalizeHue wraps any integer hue into [0,360).
func NormalizeHue(h int) int {
	return ((h % 360) + 360) % 360
}

// HueHistogram counts hues into twelve 30° buckets over [0,360).
func HueHistogram(hues []int) []HueBucket {
	out := make([]HueBucket, hueBuckets)
	for i := range out {
		start := i * hueBucketWidth
		out[i] = HueBucket{
			Range: fmt.Sprintf("%d-%d", start, start+hueBucketWidth),
			Start: start,
			End:   start + hueBucketWidth,
		}
	}
	for _, h := range hues {
		out[NormalizeHue(h)/hueBucketWidth].Count++
	}
	return out
}

// ColorCount is the frequency of one literal hex string.
type ColorCount struct {
	ColorHex string `json:"colorHex"`
	Count    int    `json:"count"`
}

// TopColors counts literal hex strings (empty strings are skipped) and returns
// the n most frequent, ties in first-seen order.
func TopColors(hexes []string, n int) []ColorCount {
	c := newCounter()
	for _, h := range hexes {
		if h == "" {
			continue
		}
		c.add(h)
	}
	ranked := c.ranked()
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]ColorCount, 0, len(ranked))
	for _, h := range ranked {
		out = append(out, ColorCount{ColorHex: h, Count: c.counts[h]})
	}
	return out
}
