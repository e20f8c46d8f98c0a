package engine

import "sync"

// TaskQueue runs work exactly one tick after it was queued.
//
// Drain is called once at a fixed point at the start of every tick. Tasks
// queued during tick N, including from inside a draining task, run at the
// drain of tick N+1. Defer may be called from any goroutine; Drain belongs
// to the tick thread.
type TaskQueue struct {
	mu     sync.Mutex
	queued []func()
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Defer queues fn for the next drain. Nil functions are ignored.
func (q *TaskQueue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.queued = append(q.queued, fn)
	q.mu.Unlock()
}

// Drain runs every task queued before this call and returns how many ran.
func (q *TaskQueue) Drain() int {
	q.mu.Lock()
	run := q.queued
	q.queued = nil
	q.mu.Unlock()
	for _, fn := range run {
		fn()
	}
	return len(run)
}

// Pending returns the number of tasks waiting for the next drain.
func (q *TaskQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queued)
}
