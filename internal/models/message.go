package models

import "encoding/json"

// Reserved topics.
const (
	TopicState = "emolamp/state"
	TopicLED   = "emolamp/led"
)

// MaxTopicMessages caps every topic queue.
const MaxTopicMessages = 100

// Message is a single published pub/sub record. Payload is opaque JSON.
type Message struct {
	ID        string          `json:"id"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	ClientID  string          `json:"clientId"`
	Timestamp int64           `json:"timestamp"`
}

func (m Message) UnixMilli() int64 { return m.Timestamp }

// LED is the payload published on TopicLED.
type LED struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}
