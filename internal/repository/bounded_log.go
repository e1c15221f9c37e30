package repository

import "sync"

// Timestamped is anything carrying a millisecond epoch timestamp.
type Timestamped interface {
	UnixMilli() int64
}

// BoundedLog is an append-only, FIFO-capped sequence guarded by a RWMutex.
// Snapshots are copies, so callers may iterate while writers evict.
type BoundedLog[T Timestamped] struct {
	mu      sync.RWMutex
	entries []T
	max     int
}

// NewBoundedLog returns a log holding at most capacity entries (<= 0 means 1).
func NewBoundedLog[T Timestamped](capacity int) *BoundedLog[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &BoundedLog[T]{max: capacity}
}

// Append adds e and evicts from the front while the log is over capacity.
// It returns the number of evicted entries.
func (l *BoundedLog[T]) Append(e T) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	over := len(l.entries) - l.max
	if over <= 0 {
		return 0
	}
	// drop the head and compact so the backing array doesn't grow forever
	kept := make([]T, l.max, l.max+1)
	copy(kept, l.entries[over:])
	l.entries = kept
	return over
}

// Snapshot returns a copy of the entries in insertion order.
func (l *BoundedLog[T]) Snapshot() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recently appended entry.
func (l *BoundedLog[T]) Last() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var zero T
	if len(l.entries) == 0 {
		return zero, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the current number of entries.
func (l *BoundedLog[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// PruneOlderThan drops every entry whose timestamp is before cutoff (ms)
// and returns how many were removed. Insertion order is preserved.
func (l *BoundedLog[T]) PruneOlderThan(cutoff int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.entries[:0]
	for _, e := range l.entries {
		if e.UnixMilli() >= cutoff {
			kept = append(kept, e)
		}
	}
	removed := len(l.entries) - len(kept)
	// clear the tail so evicted values can be collected
	var zero T
	for i := len(kept); i < len(l.entries); i++ {
		l.entries[i] = zero
	}
	l.entries = kept
	return removed
}
