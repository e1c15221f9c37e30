package repository

import (
	"sync"

	"emolamp_server/internal/models"
)

// StateMemory keeps the process-wide CurrentState behind a mutex.
type StateMemory struct {
	mu    sync.RWMutex
	state models.CurrentState
}

// Ensure implementation of StateRepo interface at compile time.
var _ StateRepo = (*StateMemory)(nil)

// NewStateMemory seeds the store with the default lamp snapshot.
func NewStateMemory(now int64) *StateMemory {
	return &StateMemory{
		state: models.CurrentState{
			Lamp:      models.DefaultLampState(now),
			UpdatedAt: now,
		},
	}
}

// Load returns a copy of the current state. Pointer fields are copied too,
// so callers can't mutate the stored entries.
func (r *StateMemory) Load() models.CurrentState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneState(r.state)
}

// Update applies fn to the state under the write lock. If fn returns an
// error the state is left untouched. The resulting state is returned.
func (r *StateMemory) Update(fn func(*models.CurrentState) error) (models.CurrentState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneState(r.state)
	if err := fn(&next); err != nil {
		return cloneState(r.state), err
	}
	r.state = next
	return cloneState(r.state), nil
}

func cloneState(s models.CurrentState) models.CurrentState {
	out := s
	if s.LastEmotion != nil {
		e := *s.LastEmotion
		out.LastEmotion = &e
	}
	if s.LastWeather != nil {
		w := *s.LastWeather
		out.LastWeather = &w
	}
	if s.LastManual != nil {
		m := *s.LastManual
		out.LastManual = &m
	}
	return out
}
