// Package metrics exposes Prometheus counters for the HTTP layer and the
// in-memory stores.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"emolamp_server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "emolamp"

// unmatchedRoute labels requests that hit no registered route, so 404 scans
// cannot blow up label cardinality.
const unmatchedRoute = "unmatched"

// otherTopic labels every client topic outside the lamp's own two.
const otherTopic = "other"

// Metrics owns its own registry; several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	messagesPublished *prometheus.CounterVec
	polls             *prometheus.CounterVec
	logsIngested      *prometheus.CounterVec
	evicted           *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total count of HTTP requests processed by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request durations by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		messagesPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_published_total",
			Help:      "Messages stored by the relay, by lamp topic; other topics share one series.",
		}, []string{"topic"}),
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Poll requests served, by whether a message was delivered.",
		}, []string{"delivered"}),
		logsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logs_ingested_total",
			Help:      "Log entries ingested, by category.",
		}, []string{"category"}),
		evicted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "janitor_evicted_total",
			Help:      "Entries removed by retention sweeps, by store.",
		}, []string{"store"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.messagesPublished,
		m.polls,
		m.logsIngested,
		m.evicted,
	)
	return m
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())
		m.httpRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) MessagePublished(topic string) {
	if m == nil {
		return
	}
	m.messagesPublished.WithLabelValues(topicLabel(topic)).Inc()
}

func topicLabel(topic string) string {
	switch topic {
	case models.TopicState, models.TopicLED:
		return topic
	default:
		return otherTopic
	}
}

func (m *Metrics) PollServed(delivered bool) {
	if m == nil {
		return
	}
	m.polls.WithLabelValues(strconv.FormatBool(delivered)).Inc()
}

func (m *Metrics) LogIngested(category string) {
	if m == nil {
		return
	}
	m.logsIngested.WithLabelValues(category).Inc()
}

func (m *Metrics) Evicted(store string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.evicted.WithLabelValues(store).Add(float64(n))
}
