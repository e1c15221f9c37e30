package service

import (
	"testing"
	"time"

	"emolamp_server/internal/models"
)

func TestTelemetry_LogEmotionDefaults(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(testEpoch)
	svc, repos, rec := newTestService(clock, time.UTC)

	e := svc.LogEmotion(EmotionParams{})
	if e.Emotion != DefaultEmotion || e.Hue != DefaultHue || e.Saturation != DefaultSaturation ||
		e.Brightness != DefaultBrightness || e.ColorHex != DefaultColorHex || e.Summary != "" {
		t.Fatalf("defaults not applied: %+v", e)
	}
	if e.Timestamp != testEpoch.UnixMilli() || e.ID == "" {
		t.Fatalf("unexpected id/timestamp: %+v", e)
	}
	if got := repos.LogRepo.Counts()[models.CategoryEmotion]; got != 1 {
		t.Fatalf("emotion count=%d, want 1", got)
	}
	if rec.ingested[models.CategoryEmotion] != 1 {
		t.Fatalf("recorder not notified")
	}
}

func TestTelemetry_LogEmotionNormalises(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(testEpoch)
	svc, _, _ := newTestService(clock, time.UTC)

	e := svc.LogEmotion(EmotionParams{
		Emotion:   ptr(" JOY "),
		Hue:       ptr(12.6),
		ColorHex:  ptr("   "),
		Summary:   ptr("  sunny walk "),
		Timestamp: ptr(float64(1700000000000)),
	})
	if e.Emotion != "joy" || e.Hue != 13 || e.ColorHex != DefaultColorHex {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Summary != "  sunny walk " {
		t.Fatalf("summary must be kept verbatim, got %q", e.Summary)
	}
	if e.Timestamp != 1700000000000 {
		t.Fatalf("client timestamp not kept: %d", e.Timestamp)
	}

	// the current state is stamped with server time, not the client's
	cur := svc.Current()
	if cur.LastEmotion == nil || cur.LastEmotion.ID != e.ID {
		t.Fatalf("last emotion not recorded: %+v", cur.LastEmotion)
	}
	if cur.Lamp.Emotion != "joy" || cur.Lamp.Hue != 13 || cur.UpdatedAt != testEpoch.UnixMilli() {
		t.Fatalf("lamp not updated: %+v", cur)
	}
}

func TestTelemetry_LogWeatherAndState(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(testEpoch)
	svc, _, _ := newTestService(clock, time.UTC)

	w := svc.LogWeather(WeatherParams{Temperature: ptr(-3.4), CityName: ptr("Seoul")})
	if w.Temperature != -3 || w.Humidity != 0 || w.Condition != DefaultCondition || w.CityName != "Seoul" {
		t.Fatalf("unexpected weather: %+v", w)
	}
	if svc.LampState().Weather != DefaultCondition {
		t.Fatalf("lamp weather not updated")
	}

	s := svc.LogState(StateParams{
		Mode:    ptr("manual"),
		Action:  ptr(models.ActionModeChange),
		Details: map[string]any{"from": "AUTO", "step": 3.0, "ok": true, "none": nil},
	})
	if s.Mode != models.ModeManual || s.Action != models.ActionModeChange {
		t.Fatalf("unexpected state: %+v", s)
	}
	want := map[string]string{"from": "AUTO", "step": "3", "ok": "true", "none": ""}
	for k, v := range want {
		if s.Details[k] != v {
			t.Fatalf("details[%s]=%q, want %q", k, s.Details[k], v)
		}
	}

	def := svc.LogState(StateParams{})
	if def.Mode != models.ModeAuto || def.Action != DefaultStateAction || len(def.Details) != 0 {
		t.Fatalf("state defaults not applied: %+v", def)
	}
}

func TestTelemetry_LogManualState(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(testEpoch)
	svc, _, _ := newTestService(clock, time.UTC)

	m := svc.LogManualState(ManualStateParams{ColorHex: ptr("#112233")})
	if m.Mode != models.ModeManual || m.Hue != DefaultManualHue || m.Saturation != DefaultManualSaturation ||
		m.Brightness != DefaultManualBrightness || m.ColorHex != "#112233" {
		t.Fatalf("unexpected manual entry: %+v", m)
	}
	lamp := svc.LampState()
	if lamp.Mode != models.ModeManual || lamp.ManualColorHex != "#112233" {
		t.Fatalf("lamp not switched to manual: %+v", lamp)
	}
	if got := svc.Counts()[models.CategoryManual]; got != 1 {
		t.Fatalf("manual count=%d, want 1", got)
	}
}
