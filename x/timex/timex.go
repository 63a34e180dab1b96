package timex

import (
	"sync/atomic"
	"time"
)

// Clock is a millisecond, non-decreasing time source. Values are only
// meaningful relative to each other; wraparound is not handled (an int64
// of milliseconds outlives the battery by several orders of magnitude).
type Clock interface {
	NowMs() int64
}

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// Monotonic reads the runtime's monotonic clock, relative to its creation.
type Monotonic struct{ start time.Time }

func NewMonotonic() *Monotonic { return &Monotonic{start: time.Now()} }

func (m *Monotonic) NowMs() int64 { return time.Since(m.start).Milliseconds() }

// Manual is a Clock advanced explicitly. Used by tests and replays.
type Manual struct{ ms atomic.Int64 }

func (m *Manual) NowMs() int64 { return m.ms.Load() }

// Set moves the clock to ms. Moving backwards is ignored.
func (m *Manual) Set(ms int64) {
	for {
		cur := m.ms.Load()
		if ms <= cur || m.ms.CompareAndSwap(cur, ms) {
			return
		}
	}
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) int64 {
	return m.ms.Add(max(d.Milliseconds(), 0))
}

// Ms converts a millisecond count from configuration to a Duration.
func Ms(ms uint32) time.Duration { return time.Duration(ms) * time.Millisecond }
