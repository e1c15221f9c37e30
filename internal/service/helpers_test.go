package service

import (
	"sync"
	"time"

	"emolamp_server/internal/repository"
)

// fakeClock is a manually advanced clock for deterministic timestamps.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// recorderStub counts Recorder calls.
type recorderStub struct {
	mu        sync.Mutex
	published map[string]int
	polls     map[bool]int
	ingested  map[string]int
	evicted   map[string]int
}

func newRecorderStub() *recorderStub {
	return &recorderStub{
		published: map[string]int{},
		polls:     map[bool]int{},
		ingested:  map[string]int{},
		evicted:   map[string]int{},
	}
}

func (r *recorderStub) MessagePublished(topic string) {
	r.mu.Lock()
	r.published[topic]++
	r.mu.Unlock()
}

func (r *recorderStub) PollServed(delivered bool) {
	r.mu.Lock()
	r.polls[delivered]++
	r.mu.Unlock()
}

func (r *recorderStub) LogIngested(category string) {
	r.mu.Lock()
	r.ingested[category]++
	r.mu.Unlock()
}

func (r *recorderStub) Evicted(store string, n int) {
	r.mu.Lock()
	r.evicted[store] += n
	r.mu.Unlock()
}

var testEpoch = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

// newTestService builds a full Service over fresh in-memory repositories.
func newTestService(clock *fakeClock, loc *time.Location) (*Service, *repository.Repository, *recorderStub) {
	repos := repository.NewRepository(repository.Limits{}, clock.Now().UnixMilli())
	rec := newRecorderStub()
	svc := NewService(repos, Options{
		Now:      clock.Now,
		Location: loc,
		Recorder: rec,
		Janitor:  JanitorConfig{SweepLogs: true, SweepPubSub: true},
	})
	return svc, repos, rec
}

func ptr[T any](v T) *T { return &v }
