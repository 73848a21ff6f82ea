// Package combine provides the fan-in combinators: Concat and Merge
// turn a stream whose elements are themselves emitters into one
// flattened stream feeding a single downstream sink.
package combine

import (
	"sync"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// gate applies the terminal policy shared by Concat and Merge and owns
// every piece of their mutable bookkeeping: the validity latch, the
// outstanding sub-emitter count, and the outer-ended flag. All state
// changes and all downstream deliveries happen inside the gate's
// critical section, so no two deliveries into the downstream sink can
// overlap.
//
// Policy: the first Error or Stopped is forwarded and latches the
// combination invalid; everything afterwards is dropped. Completed is
// forwarded at most once, and only when the outer stream has ended and
// no sub-emitter is outstanding.
type gate[T any] struct {
	mu          sync.Mutex
	down        core.Sink[T]
	invalid     bool
	done        bool
	outstanding int
	outerEnded  bool
}

func newGate[T any](down core.Sink[T]) *gate[T] {
	return &gate[T]{down: down}
}

// forward delivers a value event unless the combination already ended.
func (g *gate[T]) forward(e core.Event[T]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.invalid || g.done {
		return
	}
	g.down(e)
}

// fail latches the combination invalid and forwards the triggering
// Error or Stopped exactly once.
func (g *gate[T]) fail(e core.Event[T]) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.invalid || g.done {
		return
	}
	g.invalid = true
	g.down(e)
}

// subAdded records one more outstanding sub-emitter. Must be called
// before the sub-emitter is attached.
func (g *gate[T]) subAdded() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outstanding++
}

// subCompleted settles one sub-emitter's normal end. The sub's own
// Completed is not forwarded; it only feeds the completion condition.
func (g *gate[T]) subCompleted() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outstanding--
	g.maybeCompleteLocked()
}

// outerCompleted marks the outer stream's normal end.
func (g *gate[T]) outerCompleted() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.outerEnded = true
	g.maybeCompleteLocked()
}

func (g *gate[T]) maybeCompleteLocked() {
	if g.invalid || g.done || !g.outerEnded || g.outstanding != 0 {
		return
	}
	g.done = true
	g.down(core.Completed[T]())
}

// ended reports whether the combination will accept no further traffic.
func (g *gate[T]) ended() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.invalid || g.done
}
