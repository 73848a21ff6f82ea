// Package queue provides the serial executor the engine schedules its
// asynchronous work on: a single worker goroutine draining a FIFO list
// of submitted items, with support for pausing the drain.
package queue

import "sync"

// Queue is a serial FIFO executor. Submitted items run one at a time on
// a dedicated worker goroutine, in submission order. Queue implements
// core.PausableExecutor.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []func()
	paused bool
	closed bool
	done   chan struct{}
}

// New creates a queue and starts its worker.
func New() *Queue {
	q := &Queue{done: make(chan struct{})}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Submit enqueues one work item. Items submitted after Close are
// silently dropped.
func (q *Queue) Submit(work func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, work)
	q.cond.Signal()
}

// Pause stops the worker from dequeuing further items. The item
// currently running, if any, finishes normally.
func (q *Queue) Pause() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.paused = true
}

// Resume lets the worker dequeue again.
func (q *Queue) Resume() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.paused = false
	q.cond.Signal()
}

// Close stops accepting new work, drains the items already queued
// (ignoring any pause), and waits for the worker to exit.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Signal()
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for !q.closed && (q.paused || len(q.items) == 0) {
			q.cond.Wait()
		}
		if len(q.items) == 0 {
			// Closed and drained.
			q.mu.Unlock()
			return
		}
		work := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()
		work()
	}
}
