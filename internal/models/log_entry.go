package models

// Log categories held by the log store.
const (
	CategoryEmotion = "emotion"
	CategoryWeather = "weather"
	CategoryState   = "state"
	CategoryManual  = "manualstate"
)

// MaxLogs caps every per-category log; the oldest entry is evicted first.
const MaxLogs = 1000

// Lamp modes.
const (
	ModeAuto   = "AUTO"
	ModeManual = "MANUAL"
)

// ActionModeChange marks state entries that count toward the AUTO/MANUAL ratio.
const ActionModeChange = "mode_change"

// EmotionEntry is a single emotion analysis result pushed by the lamp.
type EmotionEntry struct {
	ID         string `json:"id"`
	Emotion    string `json:"emotion"`    // joy | sadness | anger | calm | excited | fear | surprise
	Hue        int    `json:"hue"`        // 0-360
	Saturation int    `json:"saturation"` // 0-100
	Brightness int    `json:"brightness"` // 0-100
	Summary    string `json:"summary"`
	ColorHex   string `json:"colorHex"`
	Timestamp  int64  `json:"timestamp"` // ms since epoch
}

// WeatherEntry is a weather observation.
type WeatherEntry struct {
	ID          string `json:"id"`
	Temperature int    `json:"temperature"` // °C
	Humidity    int    `json:"humidity"`    // %
	Condition   string `json:"condition"`   // Clear | Clouds | Overcast | Rain | Snow | Fog | Storm
	Description string `json:"description"`
	CityName    string `json:"cityName"`
	Timestamp   int64  `json:"timestamp"`
}

// StateEntry records a lamp mode/action change.
type StateEntry struct {
	ID        string            `json:"id"`
	Mode      string            `json:"mode"` // AUTO | MANUAL
	Action    string            `json:"action"`
	Details   map[string]string `json:"details"`
	Timestamp int64             `json:"timestamp"`
}

// ManualStateEntry records a color picked by hand.
type ManualStateEntry struct {
	ID         string `json:"id"`
	Mode       string `json:"mode"` // always MANUAL
	Hue        int    `json:"hue"`
	Saturation int    `json:"saturation"`
	Brightness int    `json:"brightness"`
	ColorHex   string `json:"colorHex"`
	Timestamp  int64  `json:"timestamp"`
}

// UnixMilli lets entries be stored in a time-bounded log.
func (e EmotionEntry) UnixMilli() int64 { return e.Timestamp }

func (e WeatherEntry) UnixMilli() int64 { return e.Timestamp }

func (e StateEntry) UnixMilli() int64 { return e.Timestamp }

func (e ManualStateEntry) UnixMilli() int64 { return e.Timestamp }
