package models

// LampState is the last-known lamp snapshot shared by publishers.
type LampState struct {
	Mode           string `json:"mode"` // AUTO | MANUAL
	Emotion        string `json:"emotion"`
	Hue            int    `json:"hue"`
	Saturation     int    `json:"saturation"`
	Brightness     int    `json:"brightness"`
	ColorHex       string `json:"colorHex"`
	ManualColorHex string `json:"manualColorHex"`
	Summary        string `json:"summary"`
	Weather        string `json:"weather"`
	Timestamp      int64  `json:"timestamp"`
}

// DefaultLampState is the snapshot served before any client writes.
func DefaultLampState(now int64) LampState {
	return LampState{
		Mode:           ModeAuto,
		Emotion:        "calm",
		Hue:            120,
		Saturation:     70,
		Brightness:     70,
		ColorHex:       "#50C878",
		ManualColorHex: "#FFFFFF",
		Timestamp:      now,
	}
}

// CurrentState is the process-wide "current" view: the lamp snapshot plus the
// latest entry of each log category, so callers don't have to scan the logs.
type CurrentState struct {
	Lamp        LampState         `json:"lamp"`
	LastEmotion *EmotionEntry     `json:"lastEmotion"`
	LastWeather *WeatherEntry     `json:"lastWeather"`
	LastManual  *ManualStateEntry `json:"lastManual"`
	UpdatedAt   int64             `json:"updatedAt"`
}
