package service

import (
	"time"

	"emolamp_server/internal/models"
	"emolamp_server/internal/repository"
	"emolamp_server/internal/stats"
)

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100

	topTransitionsN = 5
	topColorsN      = 10

	dateLayout = "2006-01-02"
)

type StatsService struct {
	logs  repository.LogRepo
	state repository.StateRepo
	now   func() time.Time
	loc   *time.Location
}

func NewStatsService(logs repository.LogRepo, state repository.StateRepo, opts Options) *StatsService {
	opts = opts.withDefaults()
	return &StatsService{logs: logs, state: state, now: opts.Now, loc: opts.Location}
}

func emotionTS(e models.EmotionEntry) int64 { return e.Timestamp }

func emotionName(e models.EmotionEntry) string { return e.Emotion }

func weatherTS(e models.WeatherEntry) int64 { return e.Timestamp }

func stateTS(e models.StateEntry) int64 { return e.Timestamp }

func manualTS(e models.ManualStateEntry) int64 { return e.Timestamp }

func emotionNames(entries []models.EmotionEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Emotion
	}
	return out
}

func dominant(dist []stats.Bucket) *stats.Bucket {
	if len(dist) == 0 {
		return nil
	}
	d := dist[0]
	return &d
}

func (s *StatsService) Today() TodayStats {
	now := s.now()
	emotions := stats.Today(s.logs.Emotions(), emotionTS, now, s.loc)
	weather := stats.Today(s.logs.Weather(), weatherTS, now, s.loc)
	dist := stats.Distribution(emotionNames(emotions))

	out := TodayStats{
		Date:          now.In(s.loc).Format(dateLayout),
		Timezone:      s.loc.String(),
		Total:         len(emotions),
		Dominant:      dominant(dist),
		Distribution:  dist,
		WeatherLogs:   len(weather),
		StateChanges:  len(stats.Today(s.logs.States(), stateTS, now, s.loc)),
		ManualChanges: len(stats.Today(s.logs.Manual(), manualTS, now, s.loc)),
	}
	if len(weather) > 0 {
		w := weather[len(weather)-1]
		out.Weather = &w
	}
	return out
}

func (s *StatsService) Emotions() EmotionStats {
	emotions := s.logs.Emotions()
	dist := stats.Distribution(emotionNames(emotions))
	return EmotionStats{Total: len(emotions), Dominant: dominant(dist), Distribution: dist}
}

func (s *StatsService) Timeline() TimelineStats {
	now := s.now()
	today := stats.Today(s.logs.Emotions(), emotionTS, now, s.loc)
	slots := stats.HourlyTimeline(today, emotionTS, s.loc)

	hours := make([]TimelineSlot, len(slots))
	for i, slot := range slots {
		hours[i] = TimelineSlot{Hour: slot.Hour, Count: slot.Count}
		if slot.Last != nil {
			emotion, color := slot.Last.Emotion, slot.Last.ColorHex
			hours[i].Emotion = &emotion
			hours[i].ColorHex = &color
		}
	}
	return TimelineStats{Date: now.In(s.loc).Format(dateLayout), Hours: hours}
}

func (s *StatsService) Summary() SummaryStats {
	emotions := s.logs.Emotions()
	weather := s.logs.Weather()
	states := s.logs.States()
	manual := s.logs.Manual()
	dist := stats.Distribution(emotionNames(emotions))

	out := SummaryStats{
		TotalEmotions:      len(emotions),
		TotalWeather:       len(weather),
		TotalStateChanges:  len(states),
		TotalManualChanges: len(manual),
		TodayEmotions:      len(stats.Today(emotions, emotionTS, s.now(), s.loc)),
		DominantEmotion:    dominant(dist),
		ModeRatio:          stats.ComputeModeRatio(states),
		AverageInterval:    stats.AverageInterval(timestamps(emotions, emotionTS)),
	}

	var all []int64
	all = append(all, timestamps(emotions, emotionTS)...)
	all = append(all, timestamps(weather, weatherTS)...)
	all = append(all, timestamps(states, stateTS)...)
	all = append(all, timestamps(manual, manualTS)...)
	if len(all) > 0 {
		first, last := all[0], all[0]
		for _, ts := range all {
			first = min(first, ts)
			last = max(last, ts)
		}
		out.FirstLog, out.LastLog = &first, &last
	}
	return out
}

// Recent returns the newest emotion entries first. limit is clamped to
// [1, MaxRecentLimit]; non-positive values mean the default.
func (s *StatsService) Recent(limit int) RecentStats {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	limit = min(limit, MaxRecentLimit)

	emotions := s.logs.Emotions()
	n := min(limit, len(emotions))
	out := make([]models.EmotionEntry, 0, n)
	for i := len(emotions) - 1; i >= len(emotions)-n; i-- {
		out = append(out, emotions[i])
	}
	return RecentStats{Limit: limit, Count: len(out), Entries: out}
}

func (s *StatsService) Advanced() AdvancedStats {
	emotions := s.logs.Emotions()
	names := emotionNames(emotions)
	return AdvancedStats{
		TotalAnalyzed:   len(emotions),
		LongestStreak:   stats.LongestStreak(names),
		TopTransitions:  stats.TopTransitions(names, topTransitionsN),
		AverageInterval: stats.AverageInterval(timestamps(emotions, emotionTS)),
		ModeRatio:       stats.ComputeModeRatio(s.logs.States()),
	}
}

func (s *StatsService) WeatherCorrelation() WeatherCorrelationStats {
	emotions := s.logs.Emotions()
	correlations := stats.CorrelateWeather(emotions, s.logs.Weather(), stats.CorrelationWindow)
	matched := 0
	for _, c := range correlations {
		matched += c.Count
	}
	return WeatherCorrelationStats{
		WindowMinutes: int(stats.CorrelationWindow / time.Minute),
		Matched:       matched,
		Unmatched:     len(emotions) - matched,
		Correlations:  correlations,
	}
}

func (s *StatsService) TimePatterns() TimePatternStats {
	emotions := s.logs.Emotions()
	return TimePatternStats{
		Timezone:  s.loc.String(),
		TimeOfDay: stats.TimeOfDayPattern(emotions, emotionTS, emotionName, s.loc),
		DayOfWeek: stats.DayOfWeekPattern(emotions, emotionTS, emotionName, s.loc),
	}
}

func (s *StatsService) ColorAnalysis() ColorAnalysisStats {
	emotions := s.logs.Emotions()
	manual := s.logs.Manual()

	hues := make([]int, 0, len(emotions))
	sats := make([]int, 0, len(emotions))
	brights := make([]int, 0, len(emotions))
	hexes := make([]string, 0, len(emotions)+len(manual))
	for _, e := range emotions {
		hues = append(hues, e.Hue)
		sats = append(sats, e.Saturation)
		brights = append(brights, e.Brightness)
		hexes = append(hexes, e.ColorHex)
	}
	for _, m := range manual {
		hexes = append(hexes, m.ColorHex)
	}

	return ColorAnalysisStats{
		TotalEmotions:     len(emotions),
		TotalManual:       len(manual),
		HueHistogram:      stats.HueHistogram(hues),
		TopColors:         stats.TopColors(hexes, topColorsN),
		AverageSaturation: stats.Mean(sats),
		AverageBrightness: stats.Mean(brights),
	}
}

func (s *StatsService) Weather() WeatherStats {
	weather := s.logs.Weather()

	conditions := make([]string, 0, len(weather))
	var cities []string
	temps := make([]int, 0, len(weather))
	humidity := make([]int, 0, len(weather))
	for _, w := range weather {
		conditions = append(conditions, w.Condition)
		if w.CityName != "" {
			cities = append(cities, w.CityName)
		}
		temps = append(temps, w.Temperature)
		humidity = append(humidity, w.Humidity)
	}

	return WeatherStats{
		Current:            s.state.Load().LastWeather,
		Total:              len(weather),
		Conditions:         stats.Distribution(conditions),
		Cities:             stats.Distribution(cities),
		AverageTemperature: stats.Mean(temps),
		AverageHumidity:    stats.Mean(humidity),
	}
}

func timestamps[T any](entries []T, ts func(T) int64) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = ts(e)
	}
	return out
}
