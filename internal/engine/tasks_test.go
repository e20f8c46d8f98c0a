package engine

import (
	"sync"
	"testing"
)

func TestTaskQueueRunsOneTickLater(t *testing.T) {
	q := NewTaskQueue()
	ran := 0

	// Tick 1: drain first, then gameplay queues work
	q.Drain()
	q.Defer(func() { ran++ })

	if ran != 0 {
		t.Fatal("Deferred task must not run in the tick it was queued")
	}
	if q.Pending() != 1 {
		t.Errorf("Expected 1 pending task, got %d", q.Pending())
	}

	// Tick 2
	if n := q.Drain(); n != 1 {
		t.Errorf("Expected 1 task drained, got %d", n)
	}
	if ran != 1 {
		t.Errorf("Expected task to run once, ran %d", ran)
	}

	// Tick 3: nothing left
	q.Drain()
	if ran != 1 {
		t.Error("Task should only run once")
	}
}

func TestTaskQueueRequeueDuringDrain(t *testing.T) {
	q := NewTaskQueue()
	var order []string

	q.Defer(func() {
		order = append(order, "first")
		q.Defer(func() { order = append(order, "second") })
	})
	q.Defer(nil)

	q.Drain()
	if len(order) != 1 {
		t.Fatalf("Task queued while draining must wait for the next drain, got %v", order)
	}

	q.Drain()
	if len(order) != 2 || order[1] != "second" {
		t.Errorf("Expected second task on the following drain, got %v", order)
	}
}

func TestTaskQueueDeferFromOtherGoroutines(t *testing.T) {
	q := NewTaskQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Defer(func() {})
			}
		}()
	}

	drained := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		drained += q.Drain()
	}
	drained += q.Drain()

	if drained != 800 {
		t.Errorf("Expected 800 tasks drained, got %d", drained)
	}
	if q.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Pending())
	}
}
