package core

// Executor is the scheduling collaborator the engine hands its
// asynchronous work to. Implementations run submitted items one at a
// time, in submission order (FIFO per executor instance). The engine
// brings no thread pool of its own.
type Executor interface {
	// Submit enqueues one unit of work. It must not block on the work
	// itself; the item may run before Submit returns only if the
	// implementation is deliberately synchronous.
	Submit(work func())
}

// PausableExecutor is an executor whose dequeuing can be temporarily
// halted. Pausing never interrupts a running item; it takes effect
// before the next dequeue. Used by the sequential fan-in combinator to
// hold back outer traffic while a sub-emitter is active.
type PausableExecutor interface {
	Executor
	Pause()
	Resume()
}
