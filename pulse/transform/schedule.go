package transform

import "github.com/lguimbarda/min-pulse/pulse/core"

// OnQueue creates a stage that resubmits every delivery as one work
// item on the executor and returns immediately. Submission order
// matches call order; delivery order is whatever the executor provides,
// which for a serial queue is the same FIFO order.
func OnQueue[T any](ex core.Executor) core.Intermediate[T, T] {
	return func(down core.Sink[T]) core.Sink[T] {
		return func(e core.Event[T]) {
			ex.Submit(func() {
				down(e)
			})
		}
	}
}
