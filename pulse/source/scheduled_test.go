package source

import (
	"sync"
	"testing"
	"time"

	"github.com/lguimbarda/min-pulse/pulse/core"
	"github.com/lguimbarda/min-pulse/pulse/queue"
)

// asyncRecord is a capture sink safe for delivery from executor
// goroutines. The done channel closes on the first terminal event.
type asyncRecord[T any] struct {
	mu       sync.Mutex
	values   []T
	terminal *core.Event[T]
	afterEnd int
	done     chan struct{}
}

func newAsyncRecord[T any]() *asyncRecord[T] {
	return &asyncRecord[T]{done: make(chan struct{})}
}

func (r *asyncRecord[T]) sink() core.Sink[T] {
	return func(e core.Event[T]) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.terminal != nil {
			r.afterEnd++
			return
		}
		if e.IsValue() {
			r.values = append(r.values, e.Value())
			return
		}
		ev := e
		r.terminal = &ev
		close(r.done)
	}
}

func (r *asyncRecord[T]) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not reach a terminal event")
	}
}

func (r *asyncRecord[T]) snapshot() ([]T, core.Event[T], int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values, *r.terminal, r.afterEnd
}

func TestSliceOnDeliversAllThenCompletes(t *testing.T) {
	q := queue.New()
	defer q.Close()

	r := newAsyncRecord[int]()
	core.Attach(SliceOn(q, []int{1, 2, 3, 4}), r.sink())
	r.wait(t)

	values, terminal, after := r.snapshot()
	if len(values) != 4 {
		t.Fatalf("got values %v, want 4 of them", values)
	}
	for i, v := range []int{1, 2, 3, 4} {
		if values[i] != v {
			t.Fatalf("got values %v, want [1 2 3 4]", values)
		}
	}
	if !terminal.IsCompleted() {
		t.Fatalf("terminal = %+v, want completed", terminal)
	}
	if after != 0 {
		t.Fatalf("%d events after terminal", after)
	}
}

func TestSeqOnStopBeforeIteration(t *testing.T) {
	q := queue.New()
	defer q.Close()

	// Hold the queue so Stop lands before the drain starts.
	q.Pause()

	r := newAsyncRecord[int]()
	term := core.Attach(SliceOn(q, []int{1, 2, 3, 4, 5}), r.sink())
	term.Stop()
	q.Resume()
	r.wait(t)

	values, terminal, after := r.snapshot()
	if len(values) != 0 {
		t.Fatalf("got values %v, want none", values)
	}
	if !terminal.IsStopped() {
		t.Fatalf("terminal = %+v, want stopped", terminal)
	}
	if after != 0 {
		t.Fatalf("%d events after terminal", after)
	}
}

func TestSeqOnStopMidIteration(t *testing.T) {
	q := queue.New()
	defer q.Close()

	term := make(chan core.Terminator, 1)
	r := newAsyncRecord[int]()

	// The sequence stops itself after the second element, between
	// deliveries, exercising the per-element checkpoint.
	seq := func(yield func(int) bool) {
		for i := 1; i <= 5; i++ {
			if !yield(i) {
				return
			}
			if i == 2 {
				(<-term).Stop()
			}
		}
	}

	term <- core.Attach(SeqOn(q, seq), r.sink())
	r.wait(t)

	values, terminal, after := r.snapshot()
	if len(values) != 2 {
		t.Fatalf("got values %v, want [1 2]", values)
	}
	if !terminal.IsStopped() {
		t.Fatalf("terminal = %+v, want stopped", terminal)
	}
	if after != 0 {
		t.Fatalf("%d events after terminal", after)
	}
}

func TestSeqOnStopAfterCompletionIsHarmless(t *testing.T) {
	q := queue.New()
	defer q.Close()

	r := newAsyncRecord[int]()
	term := core.Attach(SliceOn(q, []int{1}), r.sink())
	r.wait(t)

	term.Stop() // drain already finished; the flag has nothing to cancel
	time.Sleep(20 * time.Millisecond)

	_, terminal, after := r.snapshot()
	if !terminal.IsCompleted() || after != 0 {
		t.Fatalf("terminal = %+v after = %d, want completed and 0", terminal, after)
	}
}
