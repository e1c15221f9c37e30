package stats

import (
	"time"

	"emolamp_server/internal/models"
)

// CorrelationWindow is how far apart an emotion and a weather entry may be.
const CorrelationWindow = 30 * time.Minute

// WeatherCorrelation summarizes emotions observed under one weather condition.
type WeatherCorrelation struct {
	Condition          string   `json:"condition"`
	Count              int      `json:"count"`
	DominantEmotion    string   `json:"dominantEmotion"`
	DominantPercentage int      `json:"dominantPercentage"`
	AverageTemperature float64  `json:"averageTemperature"`
	Emotions           []Bucket `json:"emotions"`
}

// MatchWeather returns the first weather entry, in slice order, within window
// of ts. It is not necessarily the closest one.
func MatchWeather(ts int64, weather []models.WeatherEntry, window time.Duration) (models.WeatherEntry, bool) {
	w := window.Milliseconds()
	for _, entry := range weather {
		d := entry.Timestamp - ts
		if d < 0 {
			d = -d
		}
		if d <= w {
			return entry, true
		}
	}
	return models.WeatherEntry{}, false
}

// CorrelateWeather pairs every emotion with a weather entry inside window and
// groups the pairs by weather condition, in first-seen condition order.
func CorrelateWeather(emotions []models.EmotionEntry, weather []models.WeatherEntry, window time.Duration) []WeatherCorrelation {
	type group struct {
		emotions []string
		temps    []int
	}
	var order []string
	groups := make(map[string]*group)

	for _, e := range emotions {
		w, ok := MatchWeather(e.Timestamp, weather, window)
		if !ok {
			continue
		}
		g, ok := groups[w.Condition]
		if !ok {
			g = &group{}
			groups[w.Condition] = g
			order = append(order, w.Condition)
		}
		g.emotions = append(g.emotions, e.Emotion)
		g.temps = append(g.temps, w.Temperature)
	}

	out := make([]WeatherCorrelation, 0, len(order))
	for _, cond := range order {
		g := groups[cond]
		dist := Distribution(g.emotions)
		wc := WeatherCorrelation{
			Condition:          cond,
			Count:              len(g.emotions),
			AverageTemperature: Mean(g.temps),
			Emotions:           dist,
		}
		if len(dist) > 0 {
			wc.DominantEmotion = dist[0].Value
			wc.DominantPercentage = dist[0].Percentage
		}
		out = append(out, wc)
	}
	return out
}
