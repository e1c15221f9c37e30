package handlers

import (
	"encoding/json"
	"sync"

	"emolamp_server/internal/models"
	"emolamp_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockBroker struct {
	publishMsg  models.Message
	publishErr  error
	pollMsg     *models.Message
	status      service.BrokerStatus
	panicOnPoll bool

	lastTopic    string
	lastPayload  json.RawMessage
	lastClientID string
	lastSince    int64
	lastLED      models.LED
	ledCalls     int
}

func (m *mockBroker) Publish(topic string, payload json.RawMessage, clientID string) (models.Message, error) {
	m.lastTopic = topic
	m.lastPayload = payload
	m.lastClientID = clientID
	return m.publishMsg, m.publishErr
}

func (m *mockBroker) Poll(since int64, clientID string) *models.Message {
	if m.panicOnPoll {
		panic("poll exploded")
	}
	m.lastSince = since
	m.lastClientID = clientID
	return m.pollMsg
}

func (m *mockBroker) SetLED(led models.LED) models.Message {
	m.ledCalls++
	m.lastLED = led
	return models.Message{Topic: models.TopicLED}
}

func (m *mockBroker) Status() service.BrokerStatus {
	return m.status
}

type mockMonitoring struct {
	mu        sync.Mutex
	current   models.CurrentState
	mergeErr  error
	lastPatch json.RawMessage
}

func (m *mockMonitoring) LampState() models.LampState {
	return m.Current().Lamp
}

func (m *mockMonitoring) MergeLampState(patch json.RawMessage) (models.LampState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPatch = patch
	if m.mergeErr != nil {
		return models.LampState{}, m.mergeErr
	}
	return m.current.Lamp, nil
}

func (m *mockMonitoring) Current() models.CurrentState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *mockMonitoring) set(st models.CurrentState) {
	m.mu.Lock()
	m.current = st
	m.mu.Unlock()
}

type mockTelemetry struct {
	emotion models.EmotionEntry
	counts  map[string]int

	lastEmotion service.EmotionParams
	lastWeather service.WeatherParams
	lastState   service.StateParams
	lastManual  service.ManualStateParams
	manualCalls int
}

func (m *mockTelemetry) LogEmotion(p service.EmotionParams) models.EmotionEntry {
	m.lastEmotion = p
	return m.emotion
}

func (m *mockTelemetry) LogWeather(p service.WeatherParams) models.WeatherEntry {
	m.lastWeather = p
	return models.WeatherEntry{Condition: "Clear"}
}

func (m *mockTelemetry) LogState(p service.StateParams) models.StateEntry {
	m.lastState = p
	return models.StateEntry{Mode: models.ModeAuto}
}

func (m *mockTelemetry) LogManualState(p service.ManualStateParams) models.ManualStateEntry {
	m.manualCalls++
	m.lastManual = p
	return models.ManualStateEntry{Mode: models.ModeManual}
}

func (m *mockTelemetry) Counts() map[string]int {
	return m.counts
}

// mockStats embeds the interface; only the methods a test sets are safe to call.
type mockStats struct {
	service.Stats
	recent    service.RecentStats
	lastLimit int
}

func (m *mockStats) Recent(limit int) service.RecentStats {
	m.lastLimit = limit
	return m.recent
}

// ---- Shared Test Helpers ----

var allSurfaces = Options{PubSub: true, Stats: true}

func newTestRouter(s *service.Service, opts Options) *gin.Engine {
	h := NewHandler(s, nil, opts)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
