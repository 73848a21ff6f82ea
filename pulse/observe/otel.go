package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// Instrumented creates a tap that reports pipeline traffic to
// OpenTelemetry instruments created on the given meter: a counter of
// value events, a counter of error events, and a histogram of the
// latency between consecutive values in milliseconds. Instrument names
// are prefix + ".values", ".errors", and ".latency_ms".
func Instrumented[T any](ctx context.Context, m metric.Meter, prefix string) (core.Intermediate[T, T], error) {
	values, err := m.Int64Counter(prefix+".values", metric.WithDescription("count of value events"))
	if err != nil {
		return nil, err
	}
	failures, err := m.Int64Counter(prefix+".errors", metric.WithDescription("count of error events"))
	if err != nil {
		return nil, err
	}
	latency, err := m.Int64Histogram(prefix+".latency_ms", metric.WithDescription("latency between consecutive values"))
	if err != nil {
		return nil, err
	}

	return func(down core.Sink[T]) core.Sink[T] {
		var mu sync.Mutex
		var last time.Time
		return func(e core.Event[T]) {
			switch {
			case e.IsValue():
				mu.Lock()
				now := time.Now()
				if !last.IsZero() {
					latency.Record(ctx, now.Sub(last).Milliseconds())
				}
				last = now
				mu.Unlock()
				values.Add(ctx, 1)
			case e.IsError():
				failures.Add(ctx, 1)
			}
			down(e)
		}
	}, nil
}
