package stats

import "time"

// HoursPerDay is the number of timeline slots.
const HoursPerDay = 24

// StartOfDay returns local midnight of now's calendar day in loc.
func StartOfDay(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	n := now.In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
}

// Today keeps entries whose timestamp is at or after the start of now's day in loc.
func Today[T any](entries []T, ts func(T) int64, now time.Time, loc *time.Location) []T {
	start := StartOfDay(now, loc).UnixMilli()
	var out []T
	for _, e := range entries {
		if ts(e) >= start {
			out = append(out, e)
		}
	}
	return out
}

// HourSlot is one hour of a timeline. Last is the last entry seen in that
// hour (nil when Count is 0).
type HourSlot[T any] struct {
	Hour  int
	Last  *T
	Count int
}

// HourlyTimeline buckets entries by local hour of day. Entries are visited in
// the given order, so the "last" entry of an hour is the last one appended.
func HourlyTimeline[T any](entries []T, ts func(T) int64, loc *time.Location) []HourSlot[T] {
	if loc == nil {
		loc = time.Local
	}
	slots := make([]HourSlot[T], HoursPerDay)
	for h := range slots {
		slots[h].Hour = h
	}
	for i := range entries {
		h := time.UnixMilli(ts(entries[i])).In(loc).Hour()
		e := entries[i]
		slots[h].Last = &e
		slots[h].Count++
	}
	return slots
}
