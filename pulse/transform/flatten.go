package transform

import (
	"github.com/lguimbarda/min-pulse/pulse/combine"
	"github.com/lguimbarda/min-pulse/pulse/core"
)

// FlattenMap creates a stage that maps each value to a sub-emitter via
// f and flattens the resulting stream of emitters with Merge on the
// given executor. Terminal events of the outer stream follow the merge
// completion policy: Completed waits for every sub-emitter to end.
func FlattenMap[In, Out any](ex core.Executor, f func(In) core.Emitter[Out]) core.Intermediate[In, Out] {
	return func(down core.Sink[Out]) core.Sink[In] {
		in := combine.Merge(down, ex)
		return func(e core.Event[In]) {
			if e.IsValue() {
				in(core.Ok(f(e.Value())))
				return
			}
			in(core.As[core.Emitter[Out]](e))
		}
	}
}
