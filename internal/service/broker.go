package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"emolamp_server/internal/logger"
	"emolamp_server/internal/models"
	"emolamp_server/internal/repository"

	"github.com/google/uuid"
)

const (
	anonymousClient = "anonymous"
	serverClient    = "server"
	apiClient       = "api"

	payloadPreviewLen = 100
)

// ErrTopicRequired is returned by Publish when no topic is given.
var ErrTopicRequired = errors.New("topic is required")

// BrokerStatus describes the message store for status endpoints.
type BrokerStatus struct {
	Topics      map[string]int `json:"topics"`
	Subscribers int            `json:"subscribers"`
}

type BrokerService struct {
	messages repository.MessageRepo
	state    repository.StateRepo
	now      func() time.Time
	log      *logger.Logger
	rec      Recorder
}

func NewBrokerService(messages repository.MessageRepo, state repository.StateRepo, opts Options) *BrokerService {
	opts = opts.withDefaults()
	return &BrokerService{
		messages: messages,
		state:    state,
		now:      opts.Now,
		log:      opts.Log,
		rec:      opts.Recorder,
	}
}

// Publish stores a message on topic. A JSON object published on the state
// topic is also merged into the shared lamp state.
func (s *BrokerService) Publish(topic string, payload json.RawMessage, clientID string) (models.Message, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.Message{}, ErrTopicRequired
	}
	if clientID == "" {
		clientID = anonymousClient
	}

	msg := s.append(topic, payload, clientID)

	if topic == models.TopicState && isJSONObject(payload) {
		if _, err := mergeLamp(s.state, payload, s.now()); err != nil && s.log != nil {
			// the message is already stored; a bad patch only skips the merge
			s.log.Warnw("state_merge_failed", "err", err, "client_id", clientID)
		}
	}
	return msg, nil
}

// Poll returns only the newest message newer than since that was not
// published by clientID, or nil. Older undelivered messages are skipped:
// delivery is at most one message per poll. The subscriber's last-poll time
// is refreshed even when nothing is returned.
func (s *BrokerService) Poll(since int64, clientID string) *models.Message {
	if clientID == "" {
		clientID = anonymousClient
	}
	s.messages.TouchSubscriber(clientID, s.now().UnixMilli())

	pending := s.messages.Since(since, clientID)
	s.rec.PollServed(len(pending) > 0)
	if len(pending) == 0 {
		return nil
	}
	latest := pending[len(pending)-1]
	return &latest
}

// SetLED publishes a raw RGB command for the physical rig.
func (s *BrokerService) SetLED(led models.LED) models.Message {
	payload, _ := json.Marshal(led) // plain ints never fail to marshal
	return s.append(models.TopicLED, payload, apiClient)
}

func (s *BrokerService) Status() BrokerStatus {
	return BrokerStatus{
		Topics:      s.messages.Topics(),
		Subscribers: len(s.messages.Subscribers()),
	}
}

func (s *BrokerService) append(topic string, payload json.RawMessage, clientID string) models.Message {
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	msg := s.messages.Append(models.Message{
		ID:        uuid.NewString(),
		Topic:     topic,
		Payload:   payload,
		ClientID:  clientID,
		Timestamp: s.now().UnixMilli(),
	})
	s.rec.MessagePublished(topic)
	if s.log != nil {
		s.log.Infow("publish", "topic", topic, "client_id", clientID, "payload", preview(payload))
	}
	return msg
}

func preview(payload []byte) string {
	if len(payload) > payloadPreviewLen {
		return string(payload[:payloadPreviewLen])
	}
	return string(payload)
}

func isJSONObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
