package metrics

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// scrape returns the text exposition of m's registry.
func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Result().Body)
	return string(body)
}

func assertLine(t *testing.T, exposition, line string) {
	t.Helper()
	if !strings.Contains(exposition, line+"\n") {
		t.Fatalf("missing %q in exposition:\n%s", line, exposition)
	}
}

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/stats/:name", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, p := range []string{"/api/stats/today", "/api/stats/summary", "/nope"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
	}

	out := scrape(t, m)
	assertLine(t, out, `emolamp_http_requests_total{method="GET",route="/api/stats/:name",status="200"} 2`)
	assertLine(t, out, `emolamp_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assertLine(t, out, `emolamp_http_request_duration_seconds_count{route="/api/stats/:name"} 2`)
}

func TestRecorderCounters(t *testing.T) {
	m := New()
	m.MessagePublished("emolamp/led")
	m.MessagePublished("emolamp/led")
	m.PollServed(false)
	m.LogIngested("emotion")
	m.Evicted("logs", 3)
	m.Evicted("messages", 0)

	out := scrape(t, m)
	assertLine(t, out, `emolamp_messages_published_total{topic="emolamp/led"} 2`)
	assertLine(t, out, `emolamp_polls_total{delivered="false"} 1`)
	assertLine(t, out, `emolamp_logs_ingested_total{category="emotion"} 1`)
	assertLine(t, out, `emolamp_janitor_evicted_total{store="logs"} 3`)
	if strings.Contains(out, `store="messages"`) {
		t.Fatalf("zero evictions should not create a series")
	}
}

func TestMessagePublished_BoundsTopicSeries(t *testing.T) {
	m := New()
	for i := 0; i < 50; i++ {
		m.MessagePublished(fmt.Sprintf("junk/%d", i))
	}
	m.MessagePublished("emolamp/state")

	out := scrape(t, m)
	assertLine(t, out, `emolamp_messages_published_total{topic="other"} 50`)
	assertLine(t, out, `emolamp_messages_published_total{topic="emolamp/state"} 1`)
	if n := strings.Count(out, "emolamp_messages_published_total{"); n != 2 {
		t.Fatalf("want 2 topic series, got %d:\n%s", n, out)
	}
	if strings.Contains(out, "junk/") {
		t.Fatalf("client topics leaked into labels")
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.MessagePublished("t")
	m.PollServed(true)
	m.LogIngested("weather")
	m.Evicted("messages", 1)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()
	a.LogIngested("state")

	assertLine(t, scrape(t, a), `emolamp_logs_ingested_total{category="state"} 1`)
	if strings.Contains(scrape(t, b), `category="state"`) {
		t.Fatalf("registries must not share series")
	}
}
