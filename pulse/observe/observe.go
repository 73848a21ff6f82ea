// Package observe provides observability taps for pipelines: an
// in-process Stats meter and a binding to OpenTelemetry metric
// instruments. Both are ordinary stages and can sit anywhere in a
// pipeline.
package observe

import (
	"sync"
	"time"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// Stats summarizes the traffic one attachment has seen.
type Stats struct {
	Values    int64
	Errors    int64
	Stops     int64
	Completed bool

	First time.Time
	Last  time.Time

	// Latency between consecutive events.
	MinLatency time.Duration
	MaxLatency time.Duration
}

// meter owns the counters of one Meter attachment.
type meter struct {
	mu    sync.Mutex
	stats Stats
}

func (m *meter) record(isValue, isCompleted, isError bool) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if m.stats.First.IsZero() {
		m.stats.First = now
	} else {
		lat := now.Sub(m.stats.Last)
		if m.stats.MinLatency == 0 || lat < m.stats.MinLatency {
			m.stats.MinLatency = lat
		}
		if lat > m.stats.MaxLatency {
			m.stats.MaxLatency = lat
		}
	}
	m.stats.Last = now

	switch {
	case isValue:
		m.stats.Values++
	case isCompleted:
		m.stats.Completed = true
	case isError:
		m.stats.Errors++
	default:
		m.stats.Stops++
	}
	return m.stats
}

// Meter creates a tap that tallies every event passing through and, on
// the terminal event, hands the final Stats to onDone. Each attachment
// gets its own counters.
func Meter[T any](onDone func(Stats)) core.Intermediate[T, T] {
	return func(down core.Sink[T]) core.Sink[T] {
		m := &meter{}
		return func(e core.Event[T]) {
			final := m.record(e.IsValue(), e.IsCompleted(), e.IsError())
			down(e)
			if e.IsTerminal() && onDone != nil {
				onDone(final)
			}
		}
	}
}
