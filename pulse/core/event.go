// Package core defines the push-based primitives of the min-pulse
// engine: events, sinks, emitters, terminators, and their composition.
// It provides the foundational building blocks that the operator,
// source, and combinator packages are assembled from.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other pulse packages.
package core

import "errors"

// eventKind discriminates the four variants of an Event.
type eventKind uint8

const (
	valueKind eventKind = iota
	completedKind
	errorKind
	stoppedKind
)

// Event is one item flowing through a pipeline. It is exactly one of:
// a value, normal completion, an error, or a cancellation notice.
// The last three are terminal: an emitter must never push another event
// to the same sink after delivering one of them.
type Event[T any] struct {
	kind  eventKind
	value T
	err   error
}

// Ok creates a value event carrying v.
func Ok[T any](v T) Event[T] {
	return Event[T]{kind: valueKind, value: v}
}

// Completed creates the terminal event signalling normal end of stream.
func Completed[T any]() Event[T] {
	return Event[T]{kind: completedKind}
}

// Err creates the terminal event signalling abnormal end with err.
func Err[T any](err error) Event[T] {
	return Event[T]{kind: errorKind, err: err}
}

// Stopped creates the terminal event signalling end by cancellation.
func Stopped[T any]() Event[T] {
	return Event[T]{kind: stoppedKind}
}

// IsValue reports whether this event carries a value.
func (e Event[T]) IsValue() bool {
	return e.kind == valueKind
}

// IsCompleted reports whether this event is a normal completion.
func (e Event[T]) IsCompleted() bool {
	return e.kind == completedKind
}

// IsError reports whether this event carries an error.
func (e Event[T]) IsError() bool {
	return e.kind == errorKind
}

// IsStopped reports whether this event signals cancellation.
func (e Event[T]) IsStopped() bool {
	return e.kind == stoppedKind
}

// IsTerminal reports whether this event ends the stream.
func (e Event[T]) IsTerminal() bool {
	return e.kind != valueKind
}

// Value returns the carried value, or the zero value for non-value events.
func (e Event[T]) Value() T {
	return e.value
}

// Error returns the carried error if this is an error event.
func (e Event[T]) Error() error {
	if e.kind != errorKind {
		return nil
	}
	return e.err
}

// ErrValueConversion reports an attempt to project a value event across
// element types. Only terminal events are convertible; hitting this is a
// contract violation in the calling operator, not a runtime condition.
var ErrValueConversion = errors.New("pulse: cannot convert a value event across element types")

// As projects a terminal event from element type T to element type U.
// Terminal events carry no payload of the element type, so the projection
// is always legal for them. Calling As on a value event panics with
// ErrValueConversion.
func As[U, T any](e Event[T]) Event[U] {
	switch e.kind {
	case completedKind:
		return Completed[U]()
	case errorKind:
		return Err[U](e.err)
	case stoppedKind:
		return Stopped[U]()
	default:
		panic(ErrValueConversion)
	}
}
