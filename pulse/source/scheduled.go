package source

import (
	"iter"
	"slices"
	"sync/atomic"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// halt is the terminator shared between a scheduled drain and its
// caller. Stop only raises a flag; the drain observes it between
// elements, so cancellation is cooperative and never interrupts an
// in-flight delivery.
type halt struct {
	stopped atomic.Bool
}

func (h *halt) Stop() { h.stopped.Store(true) }

// SliceOn creates an emitter that drains items as a single work item on
// the executor. The returned terminator cancels the drain between
// elements; exactly one Stopped is then delivered in place of the
// remaining values.
func SliceOn[T any](ex core.Executor, items []T) core.Emitter[T] {
	return SeqOn(ex, slices.Values(items))
}

// SeqOn is SliceOn for a Go iterator sequence.
func SeqOn[T any](ex core.Executor, seq iter.Seq[T]) core.Emitter[T] {
	return func(down core.Sink[T]) core.Terminator {
		h := &halt{}
		ex.Submit(func() {
			for v := range seq {
				if h.stopped.Load() {
					down(core.Stopped[T]())
					return
				}
				down(core.Ok(v))
			}
			if h.stopped.Load() {
				down(core.Stopped[T]())
				return
			}
			down(core.Completed[T]())
		})
		return h
	}
}
