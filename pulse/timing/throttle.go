// Package timing provides the time-based pieces of the engine: the
// throttle stage and the periodic ticker emitter.
package timing

import (
	"sync"
	"time"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// pacer owns the deadline state of one Throttle attachment.
type pacer struct {
	mu   sync.Mutex
	min  time.Duration
	next time.Time
}

func (p *pacer) wait() {
	p.mu.Lock()
	d := time.Until(p.next)
	p.mu.Unlock()
	if d > 0 {
		time.Sleep(d)
	}
}

func (p *pacer) arm() {
	p.mu.Lock()
	p.next = time.Now().Add(p.min)
	p.mu.Unlock()
}

// Throttle creates a stage that blocks each delivery until at least min
// has elapsed since the previous delivery returned. Only the calling
// goroutine is rate-limited; concurrent callers get no scheduling
// guarantee beyond each one honoring the shared deadline.
func Throttle[T any](min time.Duration) core.Intermediate[T, T] {
	return func(down core.Sink[T]) core.Sink[T] {
		p := &pacer{min: min}
		return func(e core.Event[T]) {
			p.wait()
			down(e)
			p.arm()
		}
	}
}
