package task

import (
	"testing"
	"time"
)

func TestImmediateCompletionWithNilRun(t *testing.T) {
	tk := New(nil)
	tk.Start()
	if got := tk.State(); got != StateFinished {
		t.Fatalf("state: got %s, want finished", got)
	}
}

func TestStartInvokesRunOnce(t *testing.T) {
	calls := 0
	tk := New(func(done func()) {
		calls++
		done()
	})
	tk.Start()
	tk.Start()
	if calls != 1 {
		t.Errorf("run calls: got %d, want 1", calls)
	}
	if tk.State() != StateFinished {
		t.Errorf("state: got %s", tk.State())
	}
}

func TestCancelBeforeStartPreventsExecution(t *testing.T) {
	ran := false
	tk := New(func(done func()) {
		ran = true
		done()
	})
	tk.Cancel()
	tk.Start()

	if ran {
		t.Error("run body executed after cancel")
	}
	if got := tk.State(); got != StateCancelled {
		t.Errorf("state: got %s, want cancelled", got)
	}
}

func TestLateCompletionDoesNotResurrectCancelledTask(t *testing.T) {
	var done func()
	tk := New(func(d func()) {
		done = d // hold the completion; simulate slow async work
	})
	tk.Start()
	if tk.State() != StateExecuting {
		t.Fatalf("state: got %s, want executing", tk.State())
	}

	tk.Cancel()
	done() // late completion arrives after cancellation

	if got := tk.State(); got != StateCancelled {
		t.Errorf("state: got %s, want cancelled", got)
	}
}

func TestCancelPropagatesToSubHandles(t *testing.T) {
	cancelled := false
	tk := New(func(done func()) {})
	tk.OnCancel(func() { cancelled = true })
	tk.Start()
	tk.Cancel()
	if !cancelled {
		t.Error("OnCancel hook did not fire")
	}
}

func TestTerminalObserverFiresExactlyOnce(t *testing.T) {
	var done func()
	tk := New(func(d func()) { done = d })
	fires := 0
	tk.onTerminal(func() { fires++ })

	tk.Start()
	tk.Cancel()
	done() // must not fire the observer a second time

	if fires != 1 {
		t.Errorf("terminal fires: got %d, want 1", fires)
	}
}

func TestTerminalObserverOnAlreadyFinishedTask(t *testing.T) {
	tk := New(nil)
	tk.Start()

	fired := make(chan struct{}, 1)
	tk.onTerminal(func() { fired <- struct{}{} })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("observer on terminal task did not fire synchronously")
	}
}
