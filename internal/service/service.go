package service

import (
	"context"
	"encoding/json"
	"time"

	"emolamp_server/internal/logger"
	"emolamp_server/internal/models"
	"emolamp_server/internal/repository"
)

// Broker relays pub/sub messages between clients.
type Broker interface {
	Publish(topic string, payload json.RawMessage, clientID string) (models.Message, error)
	Poll(since int64, clientID string) *models.Message
	SetLED(led models.LED) models.Message
	Status() BrokerStatus
}

// Monitoring exposes the shared lamp state.
type Monitoring interface {
	LampState() models.LampState
	MergeLampState(patch json.RawMessage) (models.LampState, error)
	Current() models.CurrentState
}

// Telemetry ingests log entries, filling in defaults for missing fields.
type Telemetry interface {
	LogEmotion(p EmotionParams) models.EmotionEntry
	LogWeather(p WeatherParams) models.WeatherEntry
	LogState(p StateParams) models.StateEntry
	LogManualState(p ManualStateParams) models.ManualStateEntry
	Counts() map[string]int
}

// Stats builds the read-only statistics views over the log store.
type Stats interface {
	Today() TodayStats
	Emotions() EmotionStats
	Timeline() TimelineStats
	Summary() SummaryStats
	Recent(limit int) RecentStats
	Advanced() AdvancedStats
	WeatherCorrelation() WeatherCorrelationStats
	TimePatterns() TimePatternStats
	ColorAnalysis() ColorAnalysisStats
	Weather() WeatherStats
}

// Janitor runs the periodic retention sweeps.
// Stop via context cancellation in main() for graceful shutdown.
type Janitor interface {
	Run(ctx context.Context)
}

// Service aggregates all sub-services.
type Service struct {
	Broker
	Monitoring
	Telemetry
	Stats
	Janitor
}

// Options carries the collaborators shared by every sub-service.
type Options struct {
	Now      func() time.Time // defaults to time.Now
	Location *time.Location   // calendar used by "today", hours and weekdays
	Log      *logger.Logger   // may be nil
	Recorder Recorder         // may be nil
	Janitor  JanitorConfig
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	return o
}

// NewService wires the in-memory repositories into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	opts = opts.withDefaults()
	return &Service{
		Broker:     NewBrokerService(repos.MessageRepo, repos.StateRepo, opts),
		Monitoring: NewMonitoringService(repos.StateRepo, repos.MessageRepo, opts),
		Telemetry:  NewTelemetryService(repos.LogRepo, repos.StateRepo, opts),
		Stats:      NewStatsService(repos.LogRepo, repos.StateRepo, opts),
		Janitor:    NewJanitorService(repos.LogRepo, repos.MessageRepo, opts),
	}
}
