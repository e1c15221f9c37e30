package stats

import (
	"testing"

	"emolamp_server/internal/models"
)

func TestComputeModeRatio(t *testing.T) {
	t.Parallel()

	entries := []models.StateEntry{
		{Mode: models.ModeAuto, Action: models.ActionModeChange},
		{Mode: models.ModeManual, Action: models.ActionModeChange},
		{Mode: models.ModeManual, Action: models.ActionModeChange},
		{Mode: models.ModeManual, Action: "manual_color"},
	}
	got := ComputeModeRatio(entries)
	want := ModeRatio{Auto: 1, Manual: 2, Total: 3, AutoPercentage: 33, ManualPercentage: 67}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if empty := ComputeModeRatio(nil); empty != (ModeRatio{}) {
		t.Fatalf("empty input: %+v", empty)
	}
}
