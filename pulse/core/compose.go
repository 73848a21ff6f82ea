package core

// Composition helpers. These are pure plumbing: an Intermediate applied
// to a sink yields a sink, an Emitter applied to a sink yields a
// terminator, and intermediates compose associatively.

// Attach starts the emitter into the sink and returns its terminator.
// Equivalent to e(s) but reads left-to-right in pipeline code.
func Attach[T any](e Emitter[T], s Sink[T]) Terminator {
	return e(s)
}

// Pipe applies a single stage to the downstream sink, producing the
// upstream-facing sink.
func Pipe[In, Out any](stage Intermediate[In, Out], down Sink[Out]) Sink[In] {
	return stage(down)
}

// Compose chains two stages into one. The first stage faces upstream.
func Compose[A, B, C any](first Intermediate[A, B], second Intermediate[B, C]) Intermediate[A, C] {
	return func(down Sink[C]) Sink[A] {
		return first(second(down))
	}
}

// Through pre-composes a stage onto an emitter, yielding an emitter of
// the stage's output type.
func Through[T, U any](e Emitter[T], stage Intermediate[T, U]) Emitter[U] {
	return func(down Sink[U]) Terminator {
		return e(stage(down))
	}
}

// Chain composes any number of same-typed stages, applied in order from
// upstream to downstream. With no stages it is the identity.
func Chain[T any](stages ...Intermediate[T, T]) Intermediate[T, T] {
	return func(down Sink[T]) Sink[T] {
		for i := len(stages) - 1; i >= 0; i-- {
			down = stages[i](down)
		}
		return down
	}
}
