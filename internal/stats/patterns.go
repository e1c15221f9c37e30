package stats

import "time"

// Time-of-day periods.
const (
	PeriodMorning   = "morning"   // 06-12
	PeriodAfternoon = "afternoon" // 12-18
	PeriodEvening   = "evening"   // 18-22
	PeriodNight     = "night"     // 22-06
)

var periods = []string{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}

// PeriodOf maps an hour (0-23) to its time-of-day period.
func PeriodOf(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 18:
		return PeriodAfternoon
	case hour >= 18 && hour < 22:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

// Pattern is the dominant value of one bucket (period or weekday). Dominant is
// nil for empty buckets.
type Pattern struct {
	Bucket     string   `json:"bucket"`
	Total      int      `json:"total"`
	Dominant   *string  `json:"dominant"`
	Percentage int      `json:"percentage"`
	Values     []Bucket `json:"values"`
}

func buildPatterns(names []string, grouped map[string][]string) []Pattern {
	out := make([]Pattern, 0, len(names))
	for _, name := range names {
		vals := grouped[name]
		p := Pattern{Bucket: name, Total: len(vals), Values: Distribution(vals)}
		if len(p.Values) > 0 {
			d := p.Values[0].Value
			p.Dominant = &d
			p.Percentage = p.Values[0].Percentage
		}
		out = append(out, p)
	}
	return out
}

// TimeOfDayPattern groups values by local time-of-day period.
func TimeOfDayPattern[T any](entries []T, ts func(T) int64, value func(T) string, loc *time.Location) []Pattern {
	if loc == nil {
		loc = time.Local
	}
	grouped := make(map[string][]string, len(periods))
	for _, e := range entries {
		p := PeriodOf(time.UnixMilli(ts(e)).In(loc).Hour())
		grouped[p] = append(grouped[p], value(e))
	}
	return buildPatterns(periods, grouped)
}

// DayOfWeekPattern groups values by local weekday, Sunday first.
func DayOfWeekPattern[T any](entries []T, ts func(T) int64, value func(T) string, loc *time.Location) []Pattern {
	if loc == nil {
		loc = time.Local
	}
	days := make([]string, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = d.String()
	}
	grouped := make(map[string][]string, len(days))
	for _, e := range entries {
		d := time.UnixMilli(ts(e)).In(loc).Weekday().String()
		grouped[d] = append(grouped[d], value(e))
	}
	return buildPatterns(days, grouped)
}
