package stats

import (
	"testing"
	"time"

	"emolamp_server/internal/models"
)

func TestMatchWeather_Window(t *testing.T) {
	t.Parallel()

	const base = int64(1000)
	minutes := func(m int64) int64 { return base + m*60*1000 }

	cases := []struct {
		name string
		at   int64
		want bool
	}{
		{"29 minutes later", minutes(29), true},
		{"exactly 30 minutes", minutes(30), true},
		{"31 minutes later", minutes(31), false},
		{"29 minutes earlier", base - 29*60*1000, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			weather := []models.WeatherEntry{{Condition: "Rain", Timestamp: tc.at}}
			_, ok := MatchWeather(base, weather, CorrelationWindow)
			if ok != tc.want {
				t.Fatalf("match=%v, want %v", ok, tc.want)
			}
		})
	}
}

func TestMatchWeather_FirstMatchNotClosest(t *testing.T) {
	t.Parallel()

	weather := []models.WeatherEntry{
		{Condition: "Clouds", Timestamp: 20 * 60 * 1000},
		{Condition: "Clear", Timestamp: 0},
	}
	w, ok := MatchWeather(0, weather, CorrelationWindow)
	if !ok || w.Condition != "Clouds" {
		t.Fatalf("expected first in-window entry, got %+v ok=%v", w, ok)
	}
}

func TestCorrelateWeather_GroupsByCondition(t *testing.T) {
	t.Parallel()

	hour := time.Hour.Milliseconds()
	weather := []models.WeatherEntry{
		{Condition: "Rain", Temperature: 10, Timestamp: 0},
		{Condition: "Clear", Temperature: 25, Timestamp: 5 * hour},
	}
	emotions := []models.EmotionEntry{
		{Emotion: "sadness", Timestamp: 0},
		{Emotion: "sadness", Timestamp: 10 * 60 * 1000},
		{Emotion: "calm", Timestamp: 20 * 60 * 1000},
		{Emotion: "joy", Timestamp: 5 * hour},
		{Emotion: "fear", Timestamp: 3 * hour}, // no weather nearby
	}

	got := CorrelateWeather(emotions, weather, CorrelationWindow)
	if len(got) != 2 {
		t.Fatalf("groups=%d, want 2: %+v", len(got), got)
	}
	rain := got[0]
	if rain.Condition != "Rain" || rain.Count != 3 || rain.DominantEmotion != "sadness" ||
		rain.DominantPercentage != 67 || rain.AverageTemperature != 10 {
		t.Fatalf("rain group: %+v", rain)
	}
	sunny := got[1]
	if sunny.Condition != "Clear" || sunny.Count != 1 || sunny.DominantEmotion != "joy" || sunny.AverageTemperature != 25 {
		t.Fatalf("clear group: %+v", sunny)
	}
}
