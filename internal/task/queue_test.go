package task

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.Default()
}

func waitState(t *testing.T, tk *Task, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if tk.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("task never reached %s (state %s)", want, tk.State())
}

func TestQueueRunsTasks(t *testing.T) {
	q := NewQueue(testLogger(), WithWorkers(2))
	defer q.Shutdown(context.Background())

	var mu sync.Mutex
	ran := 0
	tasks := make([]*Task, 5)
	for i := range tasks {
		tasks[i] = New(func(done func()) {
			mu.Lock()
			ran++
			mu.Unlock()
			done()
		})
		q.Add(tasks[i])
	}
	for _, tk := range tasks {
		waitState(t, tk, StateFinished)
	}
	mu.Lock()
	defer mu.Unlock()
	if ran != 5 {
		t.Errorf("ran: got %d, want 5", ran)
	}
}

func TestQueuePriorityOrdering(t *testing.T) {
	// A single worker held busy while tasks pile up; the backlog must drain
	// highest priority first.
	q := NewQueue(testLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	release := make(chan struct{})
	gate := New(func(done func()) {
		go func() {
			<-release
			done()
		}()
	})
	q.Add(gate)
	waitState(t, gate, StateExecuting)

	var mu sync.Mutex
	var order []int
	mk := func(id int) *Task {
		return New(func(done func()) {
			mu.Lock()
			order = append(order, id)
			mu.Unlock()
			done()
		})
	}
	low := mk(1)
	high := mk(2)
	mid := mk(3)
	q.Add(low, WithPriority(0))
	q.Add(high, WithPriority(10))
	q.Add(mid, WithPriority(5))

	close(release)
	waitState(t, low, StateFinished)
	waitState(t, high, StateFinished)
	waitState(t, mid, StateFinished)

	mu.Lock()
	defer mu.Unlock()
	want := []int{2, 3, 1}
	for i, id := range want {
		if order[i] != id {
			t.Fatalf("order: got %v, want %v", order, want)
		}
	}
}

func TestQueueDependencyOrdering(t *testing.T) {
	q := NewQueue(testLogger(), WithWorkers(4))
	defer q.Shutdown(context.Background())

	var mu sync.Mutex
	var order []string
	record := func(name string) Run {
		return func(done func()) {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			done()
		}
	}

	first := New(record("first"))
	second := New(record("second"))
	q.Add(second, After(first))

	// second must not run while first is still queued elsewhere
	time.Sleep(20 * time.Millisecond)
	if second.State() != StateIdle {
		t.Fatalf("dependent task started early: %s", second.State())
	}

	q.Add(first)
	waitState(t, second, StateFinished)

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order: got %v", order)
	}
}

func TestCancelledDependencySatisfiesOrdering(t *testing.T) {
	q := NewQueue(testLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	dep := New(func(done func()) {}) // never completes on its own
	dependent := New(nil)
	q.Add(dependent, After(dep))

	dep.Cancel()
	waitState(t, dependent, StateFinished)
}

func TestCancelWhileQueuedSkipsTask(t *testing.T) {
	q := NewQueue(testLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	release := make(chan struct{})
	gate := New(func(done func()) {
		go func() {
			<-release
			done()
		}()
	})
	q.Add(gate)
	waitState(t, gate, StateExecuting)

	ran := false
	victim := New(func(done func()) {
		ran = true
		done()
	})
	q.Add(victim)
	victim.Cancel()
	close(release)

	waitState(t, gate, StateFinished)
	time.Sleep(20 * time.Millisecond)
	if ran {
		t.Error("cancelled task executed")
	}
}

func TestCancelWhileExecutingFreesWorker(t *testing.T) {
	q := NewQueue(testLogger(), WithWorkers(1))
	defer q.Shutdown(context.Background())

	wedged := New(func(done func()) {}) // never calls done
	q.Add(wedged)
	waitState(t, wedged, StateExecuting)

	next := New(nil)
	q.Add(next)

	// Cancellation must satisfy the queue's completion tracking so the
	// single worker slot is released.
	wedged.Cancel()
	waitState(t, next, StateFinished)
}

func TestAddAfterShutdownRejected(t *testing.T) {
	q := NewQueue(testLogger())
	q.Shutdown(context.Background())
	if q.Add(New(nil)) {
		t.Error("Add succeeded after shutdown")
	}
}

func TestShutdownStopsSchedulerBehindWedgedWorkers(t *testing.T) {
	// Both workers wedged and a ready entry waiting on a worker slot. After
	// Shutdown gives up, the workers finishing must not let the scheduler
	// dispatch the leftover entry.
	q := NewQueue(testLogger(), WithWorkers(2))

	release := make(chan struct{})
	for i := 0; i < 2; i++ {
		q.Add(New(func(done func()) {
			<-release
			done()
		}))
	}
	queued := New(func(done func()) { done() })
	time.Sleep(20 * time.Millisecond) // let the wedged pair occupy both workers
	q.Add(queued)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	q.Shutdown(ctx)

	close(release)
	time.Sleep(50 * time.Millisecond)
	if got := queued.State(); got != StateIdle {
		t.Errorf("leftover entry dispatched after shutdown (state %s)", got)
	}
}
