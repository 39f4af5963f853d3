package aggregate

import (
	"log/slog"
	"sync"

	"cardvault/internal/annotate"
	"cardvault/internal/annotation"
	"cardvault/internal/task"
)

// Engine is the fan-out/join aggregator. It dispatches the request to every
// descriptor's service concurrently, captures each result into its own
// slot, and once all sub-requests have reported (success or failure) merges
// the captured results strictly in descriptor order inside one serialized
// continuation, delivering the consolidated response exactly once.
//
// Like every other Annotator, the engine never mutates the shared request
// text: it merges into its own fresh snapshot and delivers that, so a
// nested engine's findings reach the enclosing merge as one sub-result and
// contend for spans at its own descriptor position.
//
// A failed sub-request contributes nothing; there is no minimum-success
// threshold, so an all-failed fan-out still completes with an empty
// snapshot. A sub-service that never calls back stalls its join forever;
// there is deliberately no timeout here.
//
// Engine itself implements annotate.Annotator, so engines nest as services
// of other engines.
type Engine struct {
	descriptors []Descriptor
	logger      *slog.Logger
}

func NewEngine(logger *slog.Logger, descriptors ...Descriptor) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{descriptors: descriptors, logger: logger}
}

// join is the enter/leave counter: one enter per dispatched sub-request,
// one leave per sub-request completion. The continuation fires on the
// goroutine performing the final leave, which is what serializes the
// merge.
type join struct {
	mu        sync.Mutex
	remaining int
	notify    func()
}

func (j *join) leave() {
	j.mu.Lock()
	j.remaining--
	fire := j.remaining == 0
	j.mu.Unlock()
	if fire {
		j.notify()
	}
}

// Annotate implements annotate.Annotator. Cancelling the returned handle
// propagates to every in-flight sub-handle and suppresses the completion;
// sub-requests already completed before cancellation are unaffected.
func (e *Engine) Annotate(req *annotate.Request, done annotate.Done) task.Handle {
	call := annotate.NewCall()
	n := len(e.descriptors)
	e.logger.Info("aggregate.fanout.start", "services", n)

	results := make([]*annotate.Response, n)
	handles := make([]task.Handle, n)
	left := make([]sync.Once, n)

	j := &join{remaining: n}
	j.notify = func() {
		if call.Cancelled() {
			e.logger.Info("aggregate.join.cancelled")
			return
		}
		acc := annotate.Blank(req)
		e.merge(acc, results)
		call.Deliver(done, &annotate.Response{Text: acc}, nil)
	}

	if n == 0 {
		// Nothing to fan out to: complete immediately with an empty
		// snapshot.
		go call.Deliver(done, &annotate.Response{Text: annotate.Blank(req)}, nil)
		return call
	}

	for i, d := range e.descriptors {
		i := i
		handles[i] = d.Service.Annotate(req, func(resp *annotate.Response, err error) {
			// Capture into this sub-request's own slot; the merge
			// snapshot is never touched from here.
			if err != nil {
				e.logger.Warn("aggregate.subrequest.failed", "index", i, "error", err)
			} else {
				results[i] = resp
			}
			left[i].Do(j.leave)
		})
	}

	call.OnCancel(func() {
		for i, h := range handles {
			if h != nil {
				h.Cancel()
			}
			// A cancelled sub-request will never call back; treat the
			// cancellation as its leave so the join's accounting closes.
			left[i].Do(j.leave)
		}
	})

	return call
}

// merge runs on the single join-continuation goroutine, strictly in
// descriptor order regardless of arrival order.
func (e *Engine) merge(acc *annotation.Text, results []*annotate.Response) {
	merged := 0
	for i, d := range e.descriptors {
		resp := results[i]
		if resp == nil || resp.Text == nil {
			continue
		}
		combine := d.Combine
		if combine == nil {
			combine = AppendDistinct
		}
		combine(acc, resp.Text)
		merged++
	}
	e.logger.Info("aggregate.join.complete",
		"merged", merged,
		"failed", len(results)-merged,
		"tags", len(acc.Tags()),
	)
}
