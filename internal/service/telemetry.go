package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"emolamp_server/internal/logger"
	"emolamp_server/internal/models"
	"emolamp_server/internal/repository"

	"github.com/google/uuid"
)

// Defaults substituted for missing ingest fields. Requests are never rejected
// for missing data.
const (
	DefaultEmotion     = "calm"
	DefaultHue         = 120
	DefaultSaturation  = 70
	DefaultBrightness  = 70
	DefaultColorHex    = "#50C878"
	DefaultCondition   = "Unknown"
	DefaultStateAction = "unknown"

	DefaultManualHue        = 0
	DefaultManualSaturation = 100
	DefaultManualBrightness = 100
	DefaultManualColorHex   = "#FFFFFF"
)

type TelemetryService struct {
	logs  repository.LogRepo
	state repository.StateRepo
	now   func() time.Time
	log   *logger.Logger
	rec   Recorder
}

func NewTelemetryService(logs repository.LogRepo, state repository.StateRepo, opts Options) *TelemetryService {
	opts = opts.withDefaults()
	return &TelemetryService{
		logs:  logs,
		state: state,
		now:   opts.Now,
		log:   opts.Log,
		rec:   opts.Recorder,
	}
}

func (s *TelemetryService) LogEmotion(p EmotionParams) models.EmotionEntry {
	e := models.EmotionEntry{
		ID:         uuid.NewString(),
		Emotion:    strings.ToLower(strOr(p.Emotion, DefaultEmotion)),
		Hue:        intOr(p.Hue, DefaultHue),
		Saturation: intOr(p.Saturation, DefaultSaturation),
		Brightness: intOr(p.Brightness, DefaultBrightness),
		Summary:    rawStrOr(p.Summary, ""),
		ColorHex:   strOr(p.ColorHex, DefaultColorHex),
		Timestamp:  s.stamp(p.Timestamp),
	}
	s.logs.AppendEmotion(e)
	s.touch(func(cur *models.CurrentState) {
		cur.LastEmotion = &e
		cur.Lamp.Emotion = e.Emotion
		cur.Lamp.Hue = e.Hue
		cur.Lamp.Saturation = e.Saturation
		cur.Lamp.Brightness = e.Brightness
		cur.Lamp.ColorHex = e.ColorHex
		cur.Lamp.Summary = e.Summary
	})
	s.ingested(models.CategoryEmotion, "emotion", e.Emotion)
	return e
}

func (s *TelemetryService) LogWeather(p WeatherParams) models.WeatherEntry {
	e := models.WeatherEntry{
		ID:          uuid.NewString(),
		Temperature: intOr(p.Temperature, 0),
		Humidity:    intOr(p.Humidity, 0),
		Condition:   strOr(p.Condition, DefaultCondition),
		Description: rawStrOr(p.Description, ""),
		CityName:    strOr(p.CityName, ""),
		Timestamp:   s.stamp(p.Timestamp),
	}
	s.logs.AppendWeather(e)
	s.touch(func(cur *models.CurrentState) {
		cur.LastWeather = &e
		cur.Lamp.Weather = e.Condition
	})
	s.ingested(models.CategoryWeather, "condition", e.Condition)
	return e
}

func (s *TelemetryService) LogState(p StateParams) models.StateEntry {
	e := models.StateEntry{
		ID:        uuid.NewString(),
		Mode:      strings.ToUpper(strOr(p.Mode, models.ModeAuto)),
		Action:    strOr(p.Action, DefaultStateAction),
		Details:   stringifyDetails(p.Details),
		Timestamp: s.stamp(p.Timestamp),
	}
	s.logs.AppendState(e)
	s.touch(func(cur *models.CurrentState) {
		cur.Lamp.Mode = e.Mode
	})
	s.ingested(models.CategoryState, "mode", e.Mode, "action", e.Action)
	return e
}

func (s *TelemetryService) LogManualState(p ManualStateParams) models.ManualStateEntry {
	e := models.ManualStateEntry{
		ID:         uuid.NewString(),
		Mode:       models.ModeManual,
		Hue:        intOr(p.Hue, DefaultManualHue),
		Saturation: intOr(p.Saturation, DefaultManualSaturation),
		Brightness: intOr(p.Brightness, DefaultManualBrightness),
		ColorHex:   strOr(p.ColorHex, DefaultManualColorHex),
		Timestamp:  s.stamp(p.Timestamp),
	}
	s.logs.AppendManual(e)
	s.touch(func(cur *models.CurrentState) {
		cur.LastManual = &e
		cur.Lamp.Mode = models.ModeManual
		cur.Lamp.ManualColorHex = e.ColorHex
	})
	s.ingested(models.CategoryManual, "color_hex", e.ColorHex)
	return e
}

func (s *TelemetryService) Counts() map[string]int {
	return s.logs.Counts()
}

// stamp uses a positive client timestamp when given, otherwise server time.
func (s *TelemetryService) stamp(ts *float64) int64 {
	if ts != nil && *ts > 0 && !math.IsInf(*ts, 0) {
		return int64(*ts)
	}
	return s.now().UnixMilli()
}

// touch applies fn to the current state and stamps it with server time.
func (s *TelemetryService) touch(fn func(*models.CurrentState)) {
	now := s.now().UnixMilli()
	_, _ = s.state.Update(func(cur *models.CurrentState) error {
		fn(cur)
		cur.Lamp.Timestamp = now
		cur.UpdatedAt = now
		return nil
	})
}

func (s *TelemetryService) ingested(category string, kv ...interface{}) {
	s.rec.LogIngested(category)
	if s.log != nil {
		s.log.Infow("log_ingested", append([]interface{}{"category", category}, kv...)...)
	}
}

// strOr returns the trimmed value, or def when it is missing or blank.
func strOr(v *string, def string) string {
	if v == nil {
		return def
	}
	if t := strings.TrimSpace(*v); t != "" {
		return t
	}
	return def
}

// rawStrOr keeps free text as sent.
func rawStrOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *float64, def int) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	return int(math.Round(*v))
}

func stringifyDetails(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case string:
			out[k] = val
		case nil:
			out[k] = ""
		default:
			b, err := json.Marshal(val)
			if err != nil {
				out[k] = fmt.Sprint(val)
				continue
			}
			out[k] = string(b)
		}
	}
	return out
}
