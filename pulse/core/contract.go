package core

import "errors"

// Sink is the push-style consumer of events. A sink may be invoked
// synchronously on the producing goroutine or rescheduled onto an
// executor; there is no backpressure signal and no return value.
type Sink[T any] func(Event[T])

// Emitter is a producer of events. Calling it starts emission into the
// given sink, synchronously or by scheduling asynchronous work, and
// returns the handle used to cancel the emission. An emitter owns
// whatever it needs to keep producing and releases it once a terminal
// event has been delivered.
type Emitter[T any] func(Sink[T]) Terminator

// Intermediate is one pipeline stage: given the downstream sink it
// produces the upstream-facing sink. Intermediates compose
// associatively via Compose.
type Intermediate[In, Out any] func(Sink[Out]) Sink[In]

// Terminator is the cooperative cancellation handle for a running
// emission. Stop may be called from any goroutine; the emitter observes
// it at its next checkpoint, delivers a final Stopped event, and
// releases its resources. Cancellation is never preemptive: an
// in-flight delivery always finishes first.
type Terminator interface {
	Stop()
}

// TerminatorFunc adapts a function to the Terminator interface.
type TerminatorFunc func()

// Stop invokes the wrapped function.
func (f TerminatorFunc) Stop() { f() }

// ErrStopAfterFinish reports a Stop call on an emission that already
// finished before its emitter returned. There is no live emission to
// cancel, so the call is a contract violation by the caller.
var ErrStopAfterFinish = errors.New("pulse: stop on an already-finished emission")

// Finished is the terminator handed out by emitters that deliver their
// whole stream synchronously before returning. It is an explicit
// variant so callers can recognize it; calling Stop on it panics with
// ErrStopAfterFinish.
type Finished struct{}

// Stop panics with ErrStopAfterFinish.
func (Finished) Stop() { panic(ErrStopAfterFinish) }
