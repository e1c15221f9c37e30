package repository

import (
	"sort"
	"sync"

	"emolamp_server/internal/models"
)

// MessageMemory holds per-topic bounded queues and the subscriber registry.
// One mutex covers both so a poll sees a consistent view of every topic.
type MessageMemory struct {
	mu          sync.RWMutex
	queues      map[string][]storedMessage
	subscribers map[string]int64 // clientId -> last poll (ms)
	maxPerTopic int
	nextSeq     uint64
}

// storedMessage carries the append order, which breaks timestamp ties
// across topics.
type storedMessage struct {
	models.Message
	seq uint64
}

// Ensure implementation of MessageRepo interface at compile time.
var _ MessageRepo = (*MessageMemory)(nil)

func NewMessageMemory(maxPerTopic int) *MessageMemory {
	if maxPerTopic <= 0 {
		maxPerTopic = models.MaxTopicMessages
	}
	return &MessageMemory{
		queues:      make(map[string][]storedMessage),
		subscribers: make(map[string]int64),
		maxPerTopic: maxPerTopic,
	}
}

// Append stores msg on its topic queue, evicting the oldest when full.
func (r *MessageMemory) Append(msg models.Message) models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	q := append(r.queues[msg.Topic], storedMessage{Message: msg, seq: r.nextSeq})
	if over := len(q) - r.maxPerTopic; over > 0 {
		q = append([]storedMessage(nil), q[over:]...)
	}
	r.queues[msg.Topic] = q
	return msg
}

// Since returns messages from all topics with Timestamp > since that were
// not published by excludeClientID, sorted ascending by timestamp. Messages
// sharing a timestamp keep the order they were appended in.
func (r *MessageMemory) Since(since int64, excludeClientID string) []models.Message {
	r.mu.RLock()
	var matched []storedMessage
	for _, q := range r.queues {
		for _, m := range q {
			if m.Timestamp > since && m.ClientID != excludeClientID {
				matched = append(matched, m)
			}
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Timestamp != matched[j].Timestamp {
			return matched[i].Timestamp < matched[j].Timestamp
		}
		return matched[i].seq < matched[j].seq
	})
	out := make([]models.Message, len(matched))
	for i, m := range matched {
		out[i] = m.Message
	}
	return out
}

// TouchSubscriber records a poll by clientID at the given time (ms).
func (r *MessageMemory) TouchSubscriber(clientID string, at int64) {
	r.mu.Lock()
	r.subscribers[clientID] = at
	r.mu.Unlock()
}

func (r *MessageMemory) Subscribers() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64, len(r.subscribers))
	for id, at := range r.subscribers {
		out[id] = at
	}
	return out
}

// Topics reports queue length per topic.
func (r *MessageMemory) Topics() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int, len(r.queues))
	for topic, q := range r.queues {
		out[topic] = len(q)
	}
	return out
}

// PruneMessagesOlderThan drops messages with Timestamp < cutoff (ms) and
// removes topics left empty. Returns the number of dropped messages.
func (r *MessageMemory) PruneMessagesOlderThan(cutoff int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for topic, q := range r.queues {
		var kept []storedMessage
		for _, m := range q {
			if m.Timestamp >= cutoff {
				kept = append(kept, m)
			}
		}
		removed += len(q) - len(kept)
		if len(kept) == 0 {
			delete(r.queues, topic)
			continue
		}
		r.queues[topic] = kept
	}
	return removed
}

// PruneSubscribersIdleSince removes subscribers whose last poll is before
// cutoff (ms) and returns their ids, sorted.
func (r *MessageMemory) PruneSubscribersIdleSince(cutoff int64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for id, last := range r.subscribers {
		if last < cutoff {
			delete(r.subscribers, id)
			removed = append(removed, id)
		}
	}
	sort.Strings(removed)
	return removed
}
