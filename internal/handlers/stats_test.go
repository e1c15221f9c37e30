package handlers

import (
	"net/http"
	"testing"
	"time"

	"emolamp_server/internal/repository"
	"emolamp_server/internal/service"
)

func TestStatsRecent_LimitQuery(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"?limit=5", 5},
		{"?limit=abc", 0},
		{"?limit=500", 500}, // clamped by the service
	}
	for _, tc := range cases {
		st := &mockStats{recent: service.RecentStats{Limit: 10}}
		r := newTestRouter(&service.Service{Stats: st}, Options{Stats: true})
		if w := serve(t, r, http.MethodGet, "/api/stats/recent"+tc.query, ""); w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", tc.query, w.Code)
		}
		if st.lastLimit != tc.want {
			t.Fatalf("%s: limit=%d, want %d", tc.query, st.lastLimit, tc.want)
		}
	}
}

func TestStatsEndpoints_RealServices(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	repos := repository.NewRepository(repository.Limits{}, now.UnixMilli())
	svc := service.NewService(repos, service.Options{Now: func() time.Time { return now }, Location: time.UTC})
	r := newTestRouter(svc, Options{Stats: true})

	for _, body := range []string{`{"emotion":"joy"}`, `{"emotion":"calm","hue":200}`, `{"emotion":"joy"}`} {
		serve(t, r, http.MethodPost, "/api/log/emotion", body)
	}
	serve(t, r, http.MethodPost, "/api/log/weather", `{"condition":"Rain","temperature":12}`)

	paths := []string{
		"today", "emotions", "timeline", "summary", "recent", "current",
		"advanced", "weather-correlation", "time-patterns", "color-analysis", "weather",
	}
	for _, p := range paths {
		w := serve(t, r, http.MethodGet, "/api/stats/"+p, "")
		if w.Code != http.StatusOK || w.Body.Len() == 0 {
			t.Fatalf("%s: status=%d body=%s", p, w.Code, w.Body.String())
		}
	}
}

func TestStatsToday_ByteIdentical(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	repos := repository.NewRepository(repository.Limits{}, now.UnixMilli())
	svc := service.NewService(repos, service.Options{Now: func() time.Time { return now }, Location: time.UTC})
	r := newTestRouter(svc, Options{Stats: true})

	serve(t, r, http.MethodPost, "/api/log/emotion", `{"emotion":"sad"}`)
	serve(t, r, http.MethodPost, "/api/log/weather", `{"condition":"Clouds"}`)

	first := serve(t, r, http.MethodGet, "/api/stats/today", "").Body.String()
	second := serve(t, r, http.MethodGet, "/api/stats/today", "").Body.String()
	if first != second {
		t.Fatalf("today differs between calls:\n%s\n%s", first, second)
	}
}
