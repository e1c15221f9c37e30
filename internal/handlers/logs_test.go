package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"emolamp_server/internal/models"
	"emolamp_server/internal/repository"
	"emolamp_server/internal/service"
)

func TestLogEmotion_ForwardsLooseFields(t *testing.T) {
	tel := &mockTelemetry{emotion: models.EmotionEntry{ID: "e1", Emotion: "joy"}}
	r := newTestRouter(&service.Service{Telemetry: tel}, Options{Stats: true})

	w := serve(t, r, http.MethodPost, "/api/log/emotion", `{"emotion":"JOY","hue":33.4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	p := tel.lastEmotion
	if p.Emotion == nil || *p.Emotion != "JOY" || p.Hue == nil || *p.Hue != 33.4 || p.Saturation != nil {
		t.Fatalf("params not decoded: %+v", p)
	}
	var resp struct {
		Success bool                `json:"success"`
		Entry   models.EmotionEntry `json:"entry"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || !resp.Success || resp.Entry.ID != "e1" {
		t.Fatalf("response: %v %+v", err, resp)
	}
}

func TestLogRoutes_EmptyAndMalformedBodies(t *testing.T) {
	for _, path := range []string{"/api/log/emotion", "/api/log/weather", "/api/log/state", "/api/log/manualstate"} {
		t.Run(path, func(t *testing.T) {
			r := newTestRouter(&service.Service{Telemetry: &mockTelemetry{}}, Options{Stats: true})

			if w := serve(t, r, http.MethodPost, path, ""); w.Code != http.StatusOK {
				t.Fatalf("empty body: status=%d body=%s", w.Code, w.Body.String())
			}
			w := serve(t, r, http.MethodPost, path, `{"hue":`)
			if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), `"error"`) {
				t.Fatalf("malformed body: status=%d body=%s", w.Code, w.Body.String())
			}
		})
	}
}

func TestLogManualState_SuccessOnly(t *testing.T) {
	tel := &mockTelemetry{}
	r := newTestRouter(&service.Service{Telemetry: tel}, Options{Stats: true})

	w := serve(t, r, http.MethodPost, "/api/log/manualstate", `{"colorHex":"#FF00FF"}`)
	if strings.TrimSpace(w.Body.String()) != `{"success":true}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if tel.manualCalls != 1 || tel.lastManual.ColorHex == nil || *tel.lastManual.ColorHex != "#FF00FF" {
		t.Fatalf("manual params: %+v", tel.lastManual)
	}
}

// Ingest through the real services: missing fields are defaulted, never rejected.
func TestLogEmotion_DefaultsEndToEnd(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	repos := repository.NewRepository(repository.Limits{}, now.UnixMilli())
	svc := service.NewService(repos, service.Options{Now: func() time.Time { return now }, Location: time.UTC})
	r := newTestRouter(svc, Options{Stats: true})

	w := serve(t, r, http.MethodPost, "/api/log/emotion", `{}`)
	var resp struct {
		Entry models.EmotionEntry `json:"entry"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	e := resp.Entry
	if e.Emotion != "calm" || e.Hue != 120 || e.Saturation != 70 || e.Brightness != 70 || e.ColorHex != "#50C878" {
		t.Fatalf("defaults not applied: %+v", e)
	}
	if e.Timestamp != now.UnixMilli() {
		t.Fatalf("timestamp=%d, want server time", e.Timestamp)
	}
}
