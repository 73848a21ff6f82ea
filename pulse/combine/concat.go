package combine

import "github.com/lguimbarda/min-pulse/pulse/core"

// Concat returns a sink that consumes a stream of sub-emitters and
// relays their events into down strictly one sub-emitter at a time, in
// arrival order. The queue is the combinator's serialization point:
// every outer event is processed as one work item, and while a
// sub-emitter is live the queue is paused, so the next sub-emitter (and
// the outer stream's own terminal) waits until the current one ends.
// One sub-emitter's values are therefore never interleaved with
// another's.
//
// A sub-emitter that outlives a failure elsewhere in the combination is
// not stopped; its remaining output is discarded by the gate.
func Concat[T any](down core.Sink[T], q core.PausableExecutor) core.Sink[core.Emitter[T]] {
	g := newGate(down)
	return func(e core.Event[core.Emitter[T]]) {
		q.Submit(func() {
			switch {
			case e.IsValue():
				if g.ended() {
					return
				}
				g.subAdded()
				q.Pause()
				sub := e.Value()
				sub(func(se core.Event[T]) {
					switch {
					case se.IsValue():
						g.forward(se)
					case se.IsCompleted():
						g.subCompleted()
						q.Resume()
					default:
						g.fail(se)
						q.Resume()
					}
				})
			case e.IsCompleted():
				g.outerCompleted()
			default:
				g.fail(core.As[T](e))
			}
		})
	}
}
