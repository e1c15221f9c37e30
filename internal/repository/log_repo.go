package repository

import "emolamp_server/internal/models"

// LogMemory keeps one bounded log per telemetry category.
type LogMemory struct {
	emotions *BoundedLog[models.EmotionEntry]
	weather  *BoundedLog[models.WeatherEntry]
	states   *BoundedLog[models.StateEntry]
	manual   *BoundedLog[models.ManualStateEntry]
}

// Ensure implementation of LogRepo interface at compile time.
var _ LogRepo = (*LogMemory)(nil)

func NewLogMemory(maxPerCategory int) *LogMemory {
	return &LogMemory{
		emotions: NewBoundedLog[models.EmotionEntry](maxPerCategory),
		weather:  NewBoundedLog[models.WeatherEntry](maxPerCategory),
		states:   NewBoundedLog[models.StateEntry](maxPerCategory),
		manual:   NewBoundedLog[models.ManualStateEntry](maxPerCategory),
	}
}

func (r *LogMemory) AppendEmotion(e models.EmotionEntry) { r.emotions.Append(e) }

func (r *LogMemory) AppendWeather(e models.WeatherEntry) { r.weather.Append(e) }

func (r *LogMemory) AppendState(e models.StateEntry) { r.states.Append(e) }

func (r *LogMemory) AppendManual(e models.ManualStateEntry) { r.manual.Append(e) }

// Snapshots are copies in insertion order.

func (r *LogMemory) Emotions() []models.EmotionEntry { return r.emotions.Snapshot() }

func (r *LogMemory) Weather() []models.WeatherEntry { return r.weather.Snapshot() }

func (r *LogMemory) States() []models.StateEntry { return r.states.Snapshot() }

func (r *LogMemory) Manual() []models.ManualStateEntry { return r.manual.Snapshot() }

// Counts reports the size of every category.
func (r *LogMemory) Counts() map[string]int {
	return map[string]int{
		models.CategoryEmotion: r.emotions.Len(),
		models.CategoryWeather: r.weather.Len(),
		models.CategoryState:   r.states.Len(),
		models.CategoryManual:  r.manual.Len(),
	}
}

// PruneOlderThan drops entries older than cutoff (ms) in every category and
// returns the number removed per category.
func (r *LogMemory) PruneOlderThan(cutoff int64) map[string]int {
	return map[string]int{
		models.CategoryEmotion: r.emotions.PruneOlderThan(cutoff),
		models.CategoryWeather: r.weather.PruneOlderThan(cutoff),
		models.CategoryState:   r.states.PruneOlderThan(cutoff),
		models.CategoryManual:  r.manual.PruneOlderThan(cutoff),
	}
}
