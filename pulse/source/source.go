// Package source provides the emitters that originate streams: single
// values, sequences drained synchronously or on an executor, and a
// state-change cell.
package source

import (
	"iter"
	"slices"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// Just creates an emitter that pushes a single value and completes,
// synchronously on the attaching goroutine. The emission is over before
// the emitter returns, so the terminator is core.Finished.
func Just[T any](v T) core.Emitter[T] {
	return func(down core.Sink[T]) core.Terminator {
		down(core.Ok(v))
		down(core.Completed[T]())
		return core.Finished{}
	}
}

// Empty creates an emitter that completes immediately without pushing
// any values.
func Empty[T any]() core.Emitter[T] {
	return func(down core.Sink[T]) core.Terminator {
		down(core.Completed[T]())
		return core.Finished{}
	}
}

// Slice creates an emitter that synchronously pushes every element of
// items in order, then completes.
func Slice[T any](items []T) core.Emitter[T] {
	return Seq(slices.Values(items))
}

// Seq creates an emitter that synchronously drains a Go iterator
// sequence, then completes.
func Seq[T any](seq iter.Seq[T]) core.Emitter[T] {
	return func(down core.Sink[T]) core.Terminator {
		for v := range seq {
			down(core.Ok(v))
		}
		down(core.Completed[T]())
		return core.Finished{}
	}
}
