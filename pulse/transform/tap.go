package transform

import "github.com/lguimbarda/min-pulse/pulse/core"

// Tap creates a stage that shows every event to observe before
// forwarding it unchanged. Useful for consumer adapters and for
// bookkeeping stages inside combinators.
func Tap[T any](observe func(core.Event[T])) core.Intermediate[T, T] {
	return func(down core.Sink[T]) core.Sink[T] {
		return func(e core.Event[T]) {
			observe(e)
			down(e)
		}
	}
}

// EventFilter creates a stage that forwards only the events pred
// accepts. Unlike Filter it sees whole events, terminals included, so
// it can also suppress terminal traffic.
func EventFilter[T any](pred func(core.Event[T]) bool) core.Intermediate[T, T] {
	return func(down core.Sink[T]) core.Sink[T] {
		return func(e core.Event[T]) {
			if pred(e) {
				down(e)
			}
		}
	}
}
