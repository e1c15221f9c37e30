package service

// Ingest params mirror the loosely-typed JSON bodies posted by the lamp.
// Every field is optional; numbers are accepted as floats and rounded, and
// missing values are replaced by the defaults in telemetry.go.

type EmotionParams struct {
	Emotion    *string  `json:"emotion"`
	Hue        *float64 `json:"hue"`
	Saturation *float64 `json:"saturation"`
	Brightness *float64 `json:"brightness"`
	Summary    *string  `json:"summary"`
	ColorHex   *string  `json:"colorHex"`
	Timestamp  *float64 `json:"timestamp"` // ms; server time when absent
}

type WeatherParams struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Condition   *string  `json:"condition"`
	Description *string  `json:"description"`
	CityName    *string  `json:"cityName"`
	Timestamp   *float64 `json:"timestamp"`
}

type StateParams struct {
	Mode      *string        `json:"mode"`
	Action    *string        `json:"action"`
	Details   map[string]any `json:"details"` // values are stringified
	Timestamp *float64       `json:"timestamp"`
}

type ManualStateParams struct {
	Hue        *float64 `json:"hue"`
	Saturation *float64 `json:"saturation"`
	Brightness *float64 `json:"brightness"`
	ColorHex   *string  `json:"colorHex"`
	Timestamp  *float64 `json:"timestamp"`
}
