package service

import (
	"context"
	"fmt"
	"time"

	"emolamp_server/internal/logger"
	"emolamp_server/internal/repository"
)

// Sweep defaults.
const (
	DefaultLogSweepInterval        = time.Hour
	DefaultLogRetention            = 24 * time.Hour
	DefaultMessageSweepInterval    = time.Minute
	DefaultMessageRetention        = time.Hour
	DefaultSubscriberSweepInterval = 5 * time.Minute
	DefaultSubscriberTimeout       = 5 * time.Minute
)

// Store names reported to the Recorder.
const (
	storeLogs        = "logs"
	storeMessages    = "messages"
	storeSubscribers = "subscribers"
)

// JanitorConfig selects which sweeps run and how often. Zero durations fall
// back to the defaults above.
type JanitorConfig struct {
	SweepLogs   bool // statistics mode
	SweepPubSub bool // pub/sub mode

	LogSweepInterval        time.Duration
	LogRetention            time.Duration
	MessageSweepInterval    time.Duration
	MessageRetention        time.Duration
	SubscriberSweepInterval time.Duration
	SubscriberTimeout       time.Duration
}

func (c JanitorConfig) withDefaults() JanitorConfig {
	def := func(d *time.Duration, v time.Duration) {
		if *d <= 0 {
			*d = v
		}
	}
	def(&c.LogSweepInterval, DefaultLogSweepInterval)
	def(&c.LogRetention, DefaultLogRetention)
	def(&c.MessageSweepInterval, DefaultMessageSweepInterval)
	def(&c.MessageRetention, DefaultMessageRetention)
	def(&c.SubscriberSweepInterval, DefaultSubscriberSweepInterval)
	def(&c.SubscriberTimeout, DefaultSubscriberTimeout)
	return c
}

// JanitorService evicts stale entries from the stores on fixed intervals.
type JanitorService struct {
	logs     repository.LogRepo
	messages repository.MessageRepo
	cfg      JanitorConfig
	now      func() time.Time
	log      *logger.Logger
	rec      Recorder
}

// NewJanitorService returns a janitor with defaults applied.
func NewJanitorService(logs repository.LogRepo, messages repository.MessageRepo, opts Options) *JanitorService {
	opts = opts.withDefaults()
	return &JanitorService{
		logs:     logs,
		messages: messages,
		cfg:      opts.Janitor.withDefaults(),
		now:      opts.Now,
		log:      opts.Log,
		rec:      opts.Recorder,
	}
}

// Run ticks until ctx is canceled. A failing sweep is logged and retried on
// its next tick.
func (s *JanitorService) Run(ctx context.Context) {
	logTick := s.ticker(s.cfg.SweepLogs, s.cfg.LogSweepInterval)
	msgTick := s.ticker(s.cfg.SweepPubSub, s.cfg.MessageSweepInterval)
	subTick := s.ticker(s.cfg.SweepPubSub, s.cfg.SubscriberSweepInterval)
	defer func() {
		for _, t := range []*time.Ticker{logTick, msgTick, subTick} {
			if t != nil {
				t.Stop()
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tickC(logTick):
			_ = s.safely("logs", func() { s.SweepLogs() })
		case <-tickC(msgTick):
			_ = s.safely("messages", func() { s.SweepMessages() })
		case <-tickC(subTick):
			_ = s.safely("subscribers", func() { s.SweepSubscribers() })
		}
	}
}

// SweepLogs drops log entries older than the retention window.
func (s *JanitorService) SweepLogs() int {
	cutoff := s.now().Add(-s.cfg.LogRetention).UnixMilli()
	removed := 0
	for category, n := range s.logs.PruneOlderThan(cutoff) {
		removed += n
		if n > 0 && s.log != nil {
			s.log.Debugw("janitor_logs_pruned", "category", category, "removed", n)
		}
	}
	s.rec.Evicted(storeLogs, removed)
	if s.log != nil {
		s.log.Infow("janitor_sweep", "store", storeLogs, "removed", removed)
	}
	return removed
}

// SweepMessages drops messages older than the message retention.
func (s *JanitorService) SweepMessages() int {
	cutoff := s.now().Add(-s.cfg.MessageRetention).UnixMilli()
	removed := s.messages.PruneMessagesOlderThan(cutoff)
	s.rec.Evicted(storeMessages, removed)
	if s.log != nil {
		s.log.Infow("janitor_sweep", "store", storeMessages, "removed", removed)
	}
	return removed
}

// SweepSubscribers forgets clients that have not polled within the timeout.
func (s *JanitorService) SweepSubscribers() []string {
	cutoff := s.now().Add(-s.cfg.SubscriberTimeout).UnixMilli()
	removed := s.messages.PruneSubscribersIdleSince(cutoff)
	s.rec.Evicted(storeSubscribers, len(removed))
	if s.log != nil {
		for _, id := range removed {
			s.log.Infow("janitor_subscriber_removed", "client_id", id)
		}
	}
	return removed
}

// safely runs one sweep, turning a panic into a logged error.
func (s *JanitorService) safely(name string, sweep func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("janitor sweep %s: %v", name, r)
			if s.log != nil {
				s.log.Errorw("janitor_sweep_failed", "sweep", name, "err", err)
			}
		}
	}()
	sweep()
	return nil
}

func (s *JanitorService) ticker(enabled bool, every time.Duration) *time.Ticker {
	if !enabled {
		return nil
	}
	return time.NewTicker(every)
}

// tickC returns a nil channel for a disabled ticker; receiving from it blocks forever.
func tickC(t *time.Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}
