package task

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"
)

type entry struct {
	task     *Task
	priority int
	seq      int64
	deps     []*Task
	index    int
}

func (e *entry) ready() bool {
	for _, d := range e.deps {
		if !d.State().Terminal() {
			return false
		}
	}
	return true
}

// entryHeap orders by priority descending, then enqueue order.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Queue runs tasks concurrently, highest priority first, holding back any
// task until all of its dependencies have reached a terminal state. Worker
// concurrency is bounded by a weighted semaphore. Cancelling a queued task
// removes it from contention; cancelling a running task satisfies the
// queue's completion tracking without a further callback from the task.
type Queue struct {
	logger  *slog.Logger
	workers int64
	sem     *semaphore.Weighted

	// stop cancels the scheduler's semaphore waits so Shutdown never
	// leaves it blocked behind wedged workers.
	stop    context.Context
	stopFn  context.CancelFunc

	mu      sync.Mutex
	pending entryHeap
	seq     int64
	closed  bool
	wake    chan struct{}
	done    chan struct{}

	inflight sync.WaitGroup
}

type QueueOption func(*Queue)

func WithWorkers(n int) QueueOption {
	return func(q *Queue) {
		if n > 0 {
			q.workers = int64(n)
		}
	}
}

func NewQueue(logger *slog.Logger, opts ...QueueOption) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		logger:  logger,
		workers: 4,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	q.stop, q.stopFn = context.WithCancel(context.Background())
	for _, o := range opts {
		o(q)
	}
	q.sem = semaphore.NewWeighted(q.workers)
	go q.schedule()
	return q
}

// AddOption configures a single enqueued task.
type AddOption func(*entry)

// WithPriority sets the scheduling priority; higher runs first. Default 0.
func WithPriority(p int) AddOption {
	return func(e *entry) { e.priority = p }
}

// After holds the task back until every listed task is finished or
// cancelled.
func After(deps ...*Task) AddOption {
	return func(e *entry) { e.deps = append(e.deps, deps...) }
}

// Add enqueues t. Returns false if the queue is shut down.
func (q *Queue) Add(t *Task, opts ...AddOption) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("queue.add.rejected", "reason", "shutdown")
		return false
	}
	q.seq++
	e := &entry{task: t, seq: q.seq}
	for _, o := range opts {
		o(e)
	}
	heap.Push(&q.pending, e)
	q.mu.Unlock()

	// Any terminal transition (the task itself, or one of its deps) may
	// unblock scheduling.
	t.onTerminal(q.poke)
	for _, d := range e.deps {
		d.onTerminal(q.poke)
	}
	q.poke()
	return true
}

func (q *Queue) poke() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue) schedule() {
	for {
		select {
		case <-q.done:
			return
		case <-q.wake:
		}
		for {
			e := q.next()
			if e == nil {
				break
			}
			if err := q.sem.Acquire(q.stop, 1); err != nil {
				return
			}
			q.inflight.Add(1)
			go q.dispatch(e)
		}
	}
}

// next pops the best ready entry: highest priority first, then enqueue
// order. Entries whose task was cancelled while queued are dropped. Entries
// with unfinished dependencies are skipped, not reordered; they regain
// contention when a dependency's terminal observer pokes the scheduler.
func (q *Queue) next() *entry {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := 0; i < len(q.pending); {
		if q.pending[i].task.State() == StateCancelled {
			heap.Remove(&q.pending, q.pending[i].index)
			continue
		}
		i++
	}

	var best *entry
	for _, e := range q.pending {
		if !e.ready() {
			continue
		}
		if best == nil || e.priority > best.priority ||
			(e.priority == best.priority && e.seq < best.seq) {
			best = e
		}
	}
	if best == nil {
		return nil
	}
	heap.Remove(&q.pending, best.index)
	return best
}

func (q *Queue) dispatch(e *entry) {
	// The task's own terminal transition is the completion signal, whether
	// finished or cancelled mid-flight; onTerminal fires exactly once.
	e.task.onTerminal(func() {
		q.sem.Release(1)
		q.inflight.Done()
		q.poke()
	})
	e.task.Start()
}

// Shutdown stops accepting work and waits for in-flight tasks until ctx
// expires. Queued tasks that never started are left idle.
func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	close(q.done)
	q.stopFn()

	drained := make(chan struct{})
	go func() { defer close(drained); q.inflight.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("queue.shutdown.interrupted")
	case <-drained:
		q.logger.Info("queue.shutdown.drained")
	}
}
