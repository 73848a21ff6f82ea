package combine

import "github.com/lguimbarda/min-pulse/pulse/core"

// Merge returns a sink that consumes a stream of sub-emitters and
// relays their events into down as they arrive, interleaved. Each
// sub-emitter is attached immediately; its deliveries are rescheduled
// onto the shared queue before reaching the gate, so sub-emitters
// firing concurrently on independent goroutines never overlap inside
// the downstream sink. No ordering is guaranteed across sub-emitters
// beyond arrival order at the queue.
//
// As with Concat, a failure does not stop the surviving sub-emitters;
// their remaining output is discarded.
func Merge[T any](down core.Sink[T], q core.Executor) core.Sink[core.Emitter[T]] {
	g := newGate(down)
	return func(e core.Event[core.Emitter[T]]) {
		switch {
		case e.IsValue():
			if g.ended() {
				return
			}
			// Count the sub before attaching it, so a sub that
			// completes synchronously cannot race the outer Completed
			// into a premature zero.
			g.subAdded()
			sub := e.Value()
			sub(func(se core.Event[T]) {
				q.Submit(func() {
					switch {
					case se.IsValue():
						g.forward(se)
					case se.IsCompleted():
						g.subCompleted()
					default:
						g.fail(se)
					}
				})
			})
		case e.IsCompleted():
			q.Submit(g.outerCompleted)
		default:
			q.Submit(func() { g.fail(core.As[T](e)) })
		}
	}
}
