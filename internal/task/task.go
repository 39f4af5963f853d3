// Package task provides the cancellable asynchronous unit of work used by the
// aggregation engine and scan pipeline, and a concurrent queue that schedules
// such units with priority and dependency ordering.
package task

import "sync"

// State is the lifecycle of a Task. Cancellation is terminal and one-way:
// a cancelled task never transitions to executing or finished.
type State int32

const (
	StateIdle State = iota
	StateExecuting
	StateFinished
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExecuting:
		return "executing"
	case StateFinished:
		return "finished"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether s is an end state.
func (s State) Terminal() bool {
	return s == StateFinished || s == StateCancelled
}

// Handle is the minimal capability of a unit of work that can be told to
// stop. Long-running service calls return one so callers can abort them.
type Handle interface {
	Cancel()
}

// HandleFunc adapts a plain function to a Handle.
type HandleFunc func()

func (f HandleFunc) Cancel() { f() }

// NopHandle is returned by work that has nothing in flight to abort.
var NopHandle Handle = HandleFunc(func() {})

// Run is the work body of a Task. Implementations must call done exactly
// once, on any goroutine, after their work (including fanned-out sub-work)
// has fully finished. The task owns its own state transitions; the queue
// observes them and must not infer completion by other means.
type Run func(done func())

// Task is a cancellable, queue-schedulable unit of asynchronous work with
// explicit state. A nil run body completes immediately.
type Task struct {
	mu       sync.Mutex
	state    State
	run      Run
	onCancel func()
	terminal []func()
}

func New(run Run) *Task {
	return &Task{run: run}
}

// OnCancel registers fn to be invoked when the task is cancelled, outside
// the task lock. Used to propagate cancellation to in-flight sub-handles.
func (t *Task) OnCancel(fn func()) {
	t.mu.Lock()
	t.onCancel = fn
	t.mu.Unlock()
}

func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start begins execution. If the task was already cancelled it is a no-op:
// a cancelled task never becomes executing. Start on an already started
// task is also a no-op.
func (t *Task) Start() {
	t.mu.Lock()
	if t.state != StateIdle {
		t.mu.Unlock()
		return
	}
	t.state = StateExecuting
	run := t.run
	t.mu.Unlock()

	if run == nil {
		t.complete()
		return
	}
	run(t.complete)
}

// complete is handed to the run body as its done callback. If the task was
// cancelled in the interim the completion is discarded: the state stays
// cancelled and no observer fires twice, so a late callback cannot
// resurrect a cancelled task's observable state.
func (t *Task) complete() {
	t.mu.Lock()
	if t.state != StateExecuting {
		t.mu.Unlock()
		return
	}
	t.state = StateFinished
	observers := t.terminal
	t.terminal = nil
	t.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// Cancel moves the task to its terminal cancelled state. Terminal observers
// fire immediately so a queue's completion tracking is satisfied without
// waiting for a callback that may never come.
func (t *Task) Cancel() {
	t.mu.Lock()
	if t.state.Terminal() {
		t.mu.Unlock()
		return
	}
	t.state = StateCancelled
	onCancel := t.onCancel
	observers := t.terminal
	t.terminal = nil
	t.mu.Unlock()

	if onCancel != nil {
		onCancel()
	}
	for _, fn := range observers {
		fn()
	}
}

// onTerminal registers fn to fire exactly once when the task reaches a
// terminal state. If the task is already terminal, fn fires synchronously.
func (t *Task) onTerminal(fn func()) {
	t.mu.Lock()
	if t.state.Terminal() {
		t.mu.Unlock()
		fn()
		return
	}
	t.terminal = append(t.terminal, fn)
	t.mu.Unlock()
}
