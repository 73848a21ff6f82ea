package source

import (
	"sync"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// State is a current-value cell whose changes form a stream. On attach
// the current value is pushed immediately; afterwards every Set that
// actually changes the value pushes it. Detaching through the
// terminator pushes a final Stopped.
//
// Mutation must come from a single logical writer. The internal mutex
// only serializes attach and detach against Set; it does not make
// concurrent writers well-defined.
type State[T comparable] struct {
	mu      sync.Mutex
	current T
	sink    core.Sink[T]
}

// NewState creates a cell holding initial.
func NewState[T comparable](initial T) *State[T] {
	return &State[T]{current: initial}
}

// Get returns the held value.
func (s *State[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the held value. If v differs from the held value and a
// sink is attached, Value(v) is pushed to it.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	if v == s.current {
		s.mu.Unlock()
		return
	}
	s.current = v
	sink := s.sink
	s.mu.Unlock()

	if sink != nil {
		sink(core.Ok(v))
	}
}

// Emitter returns the change-stream emitter for this cell. At most one
// attachment is live at a time; attaching again replaces the previous
// sink without notifying it.
func (s *State[T]) Emitter() core.Emitter[T] {
	return func(down core.Sink[T]) core.Terminator {
		s.mu.Lock()
		s.sink = down
		current := s.current
		s.mu.Unlock()

		down(core.Ok(current))

		return core.TerminatorFunc(func() {
			s.mu.Lock()
			attached := s.sink != nil
			s.sink = nil
			s.mu.Unlock()
			if attached {
				down(core.Stopped[T]())
			}
		})
	}
}
