package stats

import (
	"testing"
	"time"

	"emolamp_server/internal/models"
)

func TestPeriodOf(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		0: PeriodNight, 5: PeriodNight, 6: PeriodMorning, 11: PeriodMorning,
		12: PeriodAfternoon, 17: PeriodAfternoon, 18: PeriodEvening, 21: PeriodEvening,
		22: PeriodNight, 23: PeriodNight,
	}
	for hour, want := range cases {
		if got := PeriodOf(hour); got != want {
			t.Errorf("PeriodOf(%d)=%q, want %q", hour, got, want)
		}
	}
}

func emotionValue(e models.EmotionEntry) string { return e.Emotion }

func TestTimeOfDayPattern(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 3, 0, 0, 0, 0, seoul)
	at := func(h int) int64 { return day.Add(time.Duration(h) * time.Hour).UnixMilli() }
	entries := []models.EmotionEntry{
		{Emotion: "joy", Timestamp: at(7)},
		{Emotion: "joy", Timestamp: at(8)},
		{Emotion: "calm", Timestamp: at(9)},
		{Emotion: "fear", Timestamp: at(23)},
		{Emotion: "fear", Timestamp: at(2)},
	}

	got := TimeOfDayPattern(entries, emotionTS, emotionValue, seoul)
	if len(got) != 4 {
		t.Fatalf("len=%d, want 4", len(got))
	}
	morning := got[0]
	if morning.Bucket != PeriodMorning || morning.Total != 3 || morning.Dominant == nil ||
		*morning.Dominant != "joy" || morning.Percentage != 67 {
		t.Fatalf("morning: %+v", morning)
	}
	if got[1].Dominant != nil || got[1].Total != 0 {
		t.Fatalf("afternoon should be empty: %+v", got[1])
	}
	night := got[3]
	if night.Total != 2 || *night.Dominant != "fear" || night.Percentage != 100 {
		t.Fatalf("night: %+v", night)
	}
}

func TestDayOfWeekPattern(t *testing.T) {
	t.Parallel()

	// 2025-03-03 is a Monday.
	monday := time.Date(2025, 3, 3, 10, 0, 0, 0, seoul).UnixMilli()
	entries := []models.EmotionEntry{{Emotion: "excited", Timestamp: monday}}

	got := DayOfWeekPattern(entries, emotionTS, emotionValue, seoul)
	if len(got) != 7 || got[0].Bucket != "Sunday" || got[6].Bucket != "Saturday" {
		t.Fatalf("unexpected buckets: %+v", got)
	}
	if got[1].Bucket != "Monday" || got[1].Total != 1 || *got[1].Dominant != "excited" {
		t.Fatalf("monday: %+v", got[1])
	}
}
