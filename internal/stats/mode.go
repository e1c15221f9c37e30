package stats

import "emolamp_server/internal/models"

// ModeRatio is the AUTO/MANUAL split of mode changes. Percentages are rounded
// independently and may not add up to exactly 100.
type ModeRatio struct {
	Auto             int `json:"auto"`
	Manual           int `json:"manual"`
	Total            int `json:"total"`
	AutoPercentage   int `json:"autoPercentage"`
	ManualPercentage int `json:"manualPercentage"`
}

// ComputeModeRatio counts AUTO vs MANUAL among entries with action mode_change.
func ComputeModeRatio(entries []models.StateEntry) ModeRatio {
	var r ModeRatio
	for _, e := range entries {
		if e.Action != models.ActionModeChange {
			continue
		}
		switch e.Mode {
		case models.ModeAuto:
			r.Auto++
		case models.ModeManual:
			r.Manual++
		}
	}
	r.Total = r.Auto + r.Manual
	r.AutoPercentage = Percent(r.Auto, r.Total)
	r.ManualPercentage = Percent(r.Manual, r.Total)
	return r
}
