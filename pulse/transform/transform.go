// Package transform provides the linear pipeline stages: per-value
// transforms, predicates, folds, event-level taps, executor
// rescheduling, and the merge-backed FlattenMap.
package transform

import "github.com/lguimbarda/min-pulse/pulse/core"

// Map creates a stage that replaces each value v with f(v). Terminal
// events are projected across the element types unchanged.
func Map[In, Out any](f func(In) Out) core.Intermediate[In, Out] {
	return func(down core.Sink[Out]) core.Sink[In] {
		return func(e core.Event[In]) {
			if e.IsValue() {
				down(core.Ok(f(e.Value())))
				return
			}
			down(core.As[Out](e))
		}
	}
}

// Filter creates a stage that drops values failing pred. Every
// non-value event passes through unchanged.
func Filter[T any](pred func(T) bool) core.Intermediate[T, T] {
	return func(down core.Sink[T]) core.Sink[T] {
		return func(e core.Event[T]) {
			if e.IsValue() && !pred(e.Value()) {
				return
			}
			down(e)
		}
	}
}

// fold owns the running accumulator of one Reduce attachment. One
// instance per attachment keeps aliasing between pipelines impossible.
type fold[A any] struct {
	acc A
}

// Reduce creates a stage that folds every value into an accumulator
// without emitting, then on Completed emits the accumulator as a single
// value followed by Completed. Error and Stopped are forwarded as-is
// and discard the partial accumulator.
func Reduce[T, A any](initial A, combine func(A, T) A) core.Intermediate[T, A] {
	return func(down core.Sink[A]) core.Sink[T] {
		f := &fold[A]{acc: initial}
		return func(e core.Event[T]) {
			switch {
			case e.IsValue():
				f.acc = combine(f.acc, e.Value())
			case e.IsCompleted():
				down(core.Ok(f.acc))
				down(core.Completed[A]())
			default:
				down(core.As[A](e))
			}
		}
	}
}
