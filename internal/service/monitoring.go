package service

import (
	"encoding/json"
	"fmt"
	"time"

	"emolamp_server/internal/logger"
	"emolamp_server/internal/models"
	"emolamp_server/internal/repository"

	"github.com/google/uuid"
)

type MonitoringService struct {
	state    repository.StateRepo
	messages repository.MessageRepo
	now      func() time.Time
	log      *logger.Logger
	rec      Recorder
}

func NewMonitoringService(state repository.StateRepo, messages repository.MessageRepo, opts Options) *MonitoringService {
	opts = opts.withDefaults()
	return &MonitoringService{
		state:    state,
		messages: messages,
		now:      opts.Now,
		log:      opts.Log,
		rec:      opts.Recorder,
	}
}

// LampState returns the latest lamp snapshot.
func (s *MonitoringService) LampState() models.LampState {
	return s.state.Load().Lamp
}

// Current returns the full current-state view.
func (s *MonitoringService) Current() models.CurrentState {
	return s.state.Load()
}

// MergeLampState overlays the fields present in patch onto the lamp state,
// stamps it, and republishes the result on the state topic as "server".
func (s *MonitoringService) MergeLampState(patch json.RawMessage) (models.LampState, error) {
	now := s.now()
	lamp, err := mergeLamp(s.state, patch, now)
	if err != nil {
		return models.LampState{}, err
	}

	payload, err := json.Marshal(lamp)
	if err != nil {
		return models.LampState{}, fmt.Errorf("marshal lamp state: %w", err)
	}
	s.messages.Append(models.Message{
		ID:        uuid.NewString(),
		Topic:     models.TopicState,
		Payload:   payload,
		ClientID:  serverClient,
		Timestamp: now.UnixMilli(),
	})
	s.rec.MessagePublished(models.TopicState)
	if s.log != nil {
		s.log.Infow("state_updated", "mode", lamp.Mode, "emotion", lamp.Emotion)
	}
	return lamp, nil
}

// mergeLamp decodes patch on top of a copy of the lamp state, so only fields
// present in the patch change. A type mismatch leaves the state untouched.
func mergeLamp(repo repository.StateRepo, patch json.RawMessage, now time.Time) (models.LampState, error) {
	st, err := repo.Update(func(cur *models.CurrentState) error {
		lamp := cur.Lamp
		if len(patch) > 0 && string(patch) != "null" {
			if err := json.Unmarshal(patch, &lamp); err != nil {
				return fmt.Errorf("decode lamp state: %w", err)
			}
		}
		lamp.Timestamp = now.UnixMilli()
		cur.Lamp = lamp
		cur.UpdatedAt = lamp.Timestamp
		return nil
	})
	if err != nil {
		return models.LampState{}, err
	}
	return st.Lamp, nil
}
