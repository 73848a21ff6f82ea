// Package split provides the fan-out side of the engine: a Splitter
// broadcasts one input stream to any number of independently attached
// output sinks.
package split

import (
	"sync"

	"github.com/lguimbarda/min-pulse/pulse/core"
)

// Splitter broadcasts every event fed into its input sink to all
// currently attached outputs. Once the input delivers a terminal event
// it is cached: outputs attached afterwards receive only that cached
// event. Attach every desired output before feeding the input if all
// of them should see the whole stream.
//
// Attachments live in an arena keyed by a generated integer handle;
// the arena and the cached terminal are guarded by one mutex, and
// broadcasts deliver to a snapshot so a delivery callback detaching or
// attaching outputs cannot corrupt the running pass.
type Splitter[T any] struct {
	mu       sync.Mutex
	next     int
	outs     map[int]core.Sink[T]
	terminal *core.Event[T]
}

// New creates an empty splitter.
func New[T any]() *Splitter[T] {
	return &Splitter[T]{outs: make(map[int]core.Sink[T])}
}

// NewOutput attaches down as one more output. If the input already
// ended, the cached terminal event is replayed immediately and nothing
// is installed; the returned terminator is then a no-op detach.
// Otherwise the terminator detaches this one output and notifies it
// with a final Stopped.
func (s *Splitter[T]) NewOutput(down core.Sink[T]) core.Terminator {
	s.mu.Lock()
	if s.terminal != nil {
		cached := *s.terminal
		s.mu.Unlock()
		down(cached)
		return core.TerminatorFunc(func() {})
	}

	handle := s.next
	s.next++
	s.outs[handle] = down
	s.mu.Unlock()

	return core.TerminatorFunc(func() {
		s.mu.Lock()
		_, attached := s.outs[handle]
		delete(s.outs, handle)
		s.mu.Unlock()
		// The input may have ended (evicting everything) between the
		// attach and this stop; only a live attachment gets Stopped.
		if attached {
			down(core.Stopped[T]())
		}
	})
}

// Input returns the broadcast sink. A terminal event is cached before
// delivery and closes the splitter to further meaningful traffic: the
// arena is emptied, so detaching afterwards notifies no one.
func (s *Splitter[T]) Input() core.Sink[T] {
	return func(e core.Event[T]) {
		s.mu.Lock()
		if s.terminal != nil {
			// Contract violation upstream; the splitter already ended.
			s.mu.Unlock()
			return
		}
		targets := make([]core.Sink[T], 0, len(s.outs))
		for _, out := range s.outs {
			targets = append(targets, out)
		}
		if e.IsTerminal() {
			cached := e
			s.terminal = &cached
			clear(s.outs)
		}
		s.mu.Unlock()

		for _, out := range targets {
			out(e)
		}
	}
}

// Outputs reports how many outputs are currently attached.
func (s *Splitter[T]) Outputs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outs)
}
