package service

import (
	"emolamp_server/internal/models"
	"emolamp_server/internal/stats"
)

// Response shapes of the /api/stats endpoints.

type TodayStats struct {
	Date          string               `json:"date"`
	Timezone      string               `json:"timezone"`
	Total         int                  `json:"total"`
	Dominant      *stats.Bucket        `json:"dominant"`
	Distribution  []stats.Bucket       `json:"distribution"`
	Weather       *models.WeatherEntry `json:"weather"`
	WeatherLogs   int                  `json:"weatherLogs"`
	StateChanges  int                  `json:"stateChanges"`
	ManualChanges int                  `json:"manualChanges"`
}

type EmotionStats struct {
	Total        int            `json:"total"`
	Dominant     *stats.Bucket  `json:"dominant"`
	Distribution []stats.Bucket `json:"distribution"`
}

type TimelineSlot struct {
	Hour     int     `json:"hour"`
	Emotion  *string `json:"emotion"`
	ColorHex *string `json:"colorHex"`
	Count    int     `json:"count"`
}

type TimelineStats struct {
	Date  string         `json:"date"`
	Hours []TimelineSlot `json:"hours"`
}

type SummaryStats struct {
	TotalEmotions      int             `json:"totalEmotions"`
	TotalWeather       int             `json:"totalWeather"`
	TotalStateChanges  int             `json:"totalStateChanges"`
	TotalManualChanges int             `json:"totalManualChanges"`
	TodayEmotions      int             `json:"todayEmotions"`
	DominantEmotion    *stats.Bucket   `json:"dominantEmotion"`
	ModeRatio          stats.ModeRatio `json:"modeRatio"`
	AverageInterval    stats.Interval  `json:"averageInterval"`
	FirstLog           *int64          `json:"firstLog"`
	LastLog            *int64          `json:"lastLog"`
}

type RecentStats struct {
	Limit   int                   `json:"limit"`
	Count   int                   `json:"count"`
	Entries []models.EmotionEntry `json:"entries"`
}

type AdvancedStats struct {
	TotalAnalyzed   int                `json:"totalAnalyzed"`
	LongestStreak   stats.Streak       `json:"longestStreak"`
	TopTransitions  []stats.Transition `json:"topTransitions"`
	AverageInterval stats.Interval     `json:"averageInterval"`
	ModeRatio       stats.ModeRatio    `json:"modeRatio"`
}

type WeatherCorrelationStats struct {
	WindowMinutes int                        `json:"windowMinutes"`
	Matched       int                        `json:"matched"`
	Unmatched     int                        `json:"unmatched"`
	Correlations  []stats.WeatherCorrelation `json:"correlations"`
}

type TimePatternStats struct {
	Timezone  string          `json:"timezone"`
	TimeOfDay []stats.Pattern `json:"timeOfDay"`
	DayOfWeek []stats.Pattern `json:"dayOfWeek"`
}

type ColorAnalysisStats struct {
	TotalEmotions     int                `json:"totalEmotions"`
	TotalManual       int                `json:"totalManual"`
	HueHistogram      []stats.HueBucket  `json:"hueHistogram"`
	TopColors         []stats.ColorCount `json:"topColors"`
	AverageSaturation float64            `json:"averageSaturation"`
	AverageBrightness float64            `json:"averageBrightness"`
}

type WeatherStats struct {
	Current            *models.WeatherEntry `json:"current"`
	Total              int                  `json:"total"`
	Conditions         []stats.Bucket       `json:"conditions"`
	Cities             []stats.Bucket       `json:"cities"`
	AverageTemperature float64              `json:"averageTemperature"`
	AverageHumidity    float64              `json:"averageHumidity"`
}
