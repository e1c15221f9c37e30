package stats

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestLongestStreak(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []string
		want Streak
	}{
		{"empty", nil, Streak{}},
		{"single", []string{"calm"}, Streak{Value: "calm", Count: 1}},
		{"trailing run", []string{"joy", "joy", "calm", "joy", "joy", "joy"}, Streak{Value: "joy", Count: 3}},
		{"tie first wins", []string{"fear", "fear", "joy", "joy"}, Streak{Value: "fear", Count: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LongestStreak(tc.in); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTopTransitions(t *testing.T) {
	t.Parallel()

	got := TopTransitions([]string{"joy", "calm", "joy", "calm"}, 5)
	want := []Transition{
		{From: "joy", To: "calm", Count: 2},
		{From: "calm", To: "joy", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTopTransitions_SkipsRepeatsAndLimits(t *testing.T) {
	t.Parallel()

	seq := []string{"a", "a", "b", "c", "d", "e", "f", "g"}
	got := TopTransitions(seq, 5)
	if len(got) != 5 {
		t.Fatalf("len=%d, want 5", len(got))
	}
	// all counts tie at 1, so encounter order is kept
	if got[0].From != "a" || got[0].To != "b" || got[4].From != "e" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestTopTransitions_EmptyEncodesAsArray(t *testing.T) {
	t.Parallel()

	for _, in := range [][]string{nil, {"calm"}, {"joy", "joy"}} {
		got := TopTransitions(in, 5)
		raw, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(raw) != "[]" {
			t.Fatalf("TopTransitions(%v) encoded as %s, want []", in, raw)
		}
	}
}

func TestAverageInterval(t *testing.T) {
	t.Parallel()

	if got := AverageInterval([]int64{1}); got.Sufficient || got.Formatted != "insufficient data" {
		t.Fatalf("single timestamp: %+v", got)
	}

	const minute = int64(60_000)
	// unsorted on purpose: gaps are 90m and 60m, mean 75m
	got := AverageInterval([]int64{150 * minute, 0, 90 * minute})
	if !got.Sufficient || got.Millis != 75*minute {
		t.Fatalf("unexpected interval: %+v", got)
	}
	if got.Hours != 1 || got.Minutes != 15 || got.Formatted != "1:15" {
		t.Fatalf("unexpected formatting: %+v", got)
	}
}
