// Package pulse provides a push-based reactive stream engine: emitters
// push typed events into sinks, and combinators transform, filter,
// fold, schedule, fan-in, and fan-out those streams.
//
// This package is the primary user-facing API. Most users should only
// need to import this package together with the operator subpackages.
// The pulse/core subpackage contains the low-level contracts that are
// rarely needed directly.
package pulse

import "github.com/lguimbarda/min-pulse/pulse/core"

// Type aliases for the core contracts. These allow users to work with
// the engine without importing core directly.
type (
	// Event is one item flowing through a pipeline: a value or one of
	// the three terminal outcomes.
	Event[T any] = core.Event[T]

	// Sink is the push-style consumer of events.
	Sink[T any] = core.Sink[T]

	// Emitter produces events into a sink and returns a terminator.
	Emitter[T any] = core.Emitter[T]

	// Intermediate is a sink-to-sink transform representing one
	// pipeline stage.
	Intermediate[In, Out any] = core.Intermediate[In, Out]

	// Terminator is the cooperative cancellation handle for a running
	// emission.
	Terminator = core.Terminator

	// Executor is the scheduling collaborator asynchronous work is
	// handed to.
	Executor = core.Executor
)

// ErrStopAfterFinish is the panic value of Stop on an already-finished
// emission.
var ErrStopAfterFinish = core.ErrStopAfterFinish

// Event constructors - wrappers around core functions.

// Ok creates a value event.
func Ok[T any](v T) Event[T] {
	return core.Ok(v)
}

// Completed creates the normal-end terminal event.
func Completed[T any]() Event[T] {
	return core.Completed[T]()
}

// Err creates the error terminal event.
func Err[T any](err error) Event[T] {
	return core.Err[T](err)
}

// Stopped creates the cancellation terminal event.
func Stopped[T any]() Event[T] {
	return core.Stopped[T]()
}

// As projects a terminal event across element types.
func As[U, T any](e Event[T]) Event[U] {
	return core.As[U](e)
}

// Composition - wrappers around core functions.

// Attach starts the emitter into the sink and returns its terminator.
func Attach[T any](e Emitter[T], s Sink[T]) Terminator {
	return core.Attach(e, s)
}

// Pipe applies a stage to the downstream sink, producing the
// upstream-facing sink.
func Pipe[In, Out any](stage Intermediate[In, Out], down Sink[Out]) Sink[In] {
	return core.Pipe(stage, down)
}

// Compose chains two stages into one.
func Compose[A, B, C any](first Intermediate[A, B], second Intermediate[B, C]) Intermediate[A, C] {
	return core.Compose(first, second)
}

// Through pre-composes a stage onto an emitter.
func Through[T, U any](e Emitter[T], stage Intermediate[T, U]) Emitter[U] {
	return core.Through(e, stage)
}

// Chain composes any number of same-typed stages in order.
func Chain[T any](stages ...Intermediate[T, T]) Intermediate[T, T] {
	return core.Chain(stages...)
}

// Consumer adapters.

// Each returns a sink that invokes fn for every value and ignores
// terminal events.
func Each[T any](fn func(T)) Sink[T] {
	return func(e Event[T]) {
		if e.IsValue() {
			fn(e.Value())
		}
	}
}

// OnEnd returns a sink that invokes fn with every value and, when the
// stream ends, calls end with the terminal event.
func OnEnd[T any](fn func(T), end func(Event[T])) Sink[T] {
	return func(e Event[T]) {
		if e.IsValue() {
			if fn != nil {
				fn(e.Value())
			}
			return
		}
		if end != nil {
			end(e)
		}
	}
}
