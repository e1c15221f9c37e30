package repository

import (
	"errors"
	"testing"

	"emolamp_server/internal/models"
)

func TestStateMemory_DefaultsAndCopyOnLoad(t *testing.T) {
	t.Parallel()

	r := NewStateMemory(42)
	st := r.Load()
	if st.Lamp.Mode != models.ModeAuto || st.Lamp.Emotion != "calm" || st.Lamp.Hue != 120 {
		t.Fatalf("unexpected defaults: %+v", st.Lamp)
	}
	if st.Lamp.Timestamp != 42 || st.UpdatedAt != 42 {
		t.Fatalf("timestamps not seeded: %+v", st)
	}

	_, _ = r.Update(func(s *models.CurrentState) error {
		s.LastEmotion = &models.EmotionEntry{Emotion: "joy"}
		return nil
	})
	loaded := r.Load()
	loaded.LastEmotion.Emotion = "mutated"
	if r.Load().LastEmotion.Emotion != "joy" {
		t.Fatalf("Load must not alias stored entries")
	}
}

func TestStateMemory_UpdateErrorLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	r := NewStateMemory(1)
	boom := errors.New("boom")
	got, err := r.Update(func(s *models.CurrentState) error {
		s.Lamp.Emotion = "anger"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got.Lamp.Emotion != "calm" || r.Load().Lamp.Emotion != "calm" {
		t.Fatalf("state changed despite error: %+v", r.Load().Lamp)
	}
}
