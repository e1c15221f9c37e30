package repository

import "emolamp_server/internal/models"

// LogRepo is the per-category telemetry log store.
type LogRepo interface {
	AppendEmotion(e models.EmotionEntry)
	AppendWeather(e models.WeatherEntry)
	AppendState(e models.StateEntry)
	AppendManual(e models.ManualStateEntry)

	Emotions() []models.EmotionEntry
	Weather() []models.WeatherEntry
	States() []models.StateEntry
	Manual() []models.ManualStateEntry

	Counts() map[string]int
	PruneOlderThan(cutoff int64) map[string]int
}

// MessageRepo is the pub/sub topic store plus subscriber registry.
type MessageRepo interface {
	Append(msg models.Message) models.Message
	Since(since int64, excludeClientID string) []models.Message
	TouchSubscriber(clientID string, at int64)
	Subscribers() map[string]int64
	Topics() map[string]int
	PruneMessagesOlderThan(cutoff int64) int
	PruneSubscribersIdleSince(cutoff int64) []string
}

// StateRepo holds the shared CurrentState.
type StateRepo interface {
	Load() models.CurrentState
	Update(fn func(*models.CurrentState) error) (models.CurrentState, error)
}

// Repository aggregates the in-memory stores.
type Repository struct {
	LogRepo     LogRepo
	MessageRepo MessageRepo
	StateRepo   StateRepo
}

// Limits configures store capacities.
type Limits struct {
	MaxLogs          int
	MaxTopicMessages int
}

func NewRepository(limits Limits, now int64) *Repository {
	if limits.MaxLogs <= 0 {
		limits.MaxLogs = models.MaxLogs
	}
	return &Repository{
		LogRepo:     NewLogMemory(limits.MaxLogs),
		MessageRepo: NewMessageMemory(limits.MaxTopicMessages),
		StateRepo:   NewStateMemory(now),
	}
}
