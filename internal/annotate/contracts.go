// Package annotate defines the one shape every annotation source fits:
// take a request, asynchronously produce annotations or an error, return a
// cancellable handle. Local detectors, remote vendor clients and the
// aggregation engine itself all implement Annotator, so sources compose and
// nest without the orchestration layer knowing which is which.
package annotate

import (
	"sync"

	"cardvault/internal/annotation"
	"cardvault/internal/task"
)

// Request is the input to an annotation pass. Text is shared by reference
// with every fanned-out service; services never mutate it. Each returns an
// immutable snapshot of its own findings and the aggregation layer merges
// those on a single goroutine. Image carries the raw bytes for vision
// variants and is nil for text-only passes.
type Request struct {
	Text  *annotation.Text
	Image []byte
}

// NewTextRequest builds a request around pre-split lines of text.
func NewTextRequest(lines []string) *Request {
	return &Request{Text: annotation.NewFromLines(lines)}
}

// NewImageRequest builds a request around raw image bytes.
func NewImageRequest(image []byte) *Request {
	return &Request{Image: image}
}

// Response wraps the annotated text a service produced. Exactly one
// response is delivered per accepted request.
type Response struct {
	Text *annotation.Text
}

// Done receives the outcome of an annotation pass. (nil, err) means the
// service contributed nothing; callers must treat that as a zero
// contribution, never as a fatal failure.
type Done func(*Response, error)

// Annotator is the polymorphic annotation capability. Implementations must
// invoke done exactly once, on any goroutine, unless the returned handle is
// cancelled first: a handle cancelled before the callback fires must
// suppress it entirely.
type Annotator interface {
	Annotate(req *Request, done Done) task.Handle
}

// Blank returns a fresh Text with the same content and line structure as
// req's text but no annotations: the snapshot a service appends its own
// findings to.
func Blank(req *Request) *annotation.Text {
	if req.Text == nil {
		return annotation.NewFromLines(nil)
	}
	return annotation.New(req.Text.Content(), annotation.Separator)
}

// Call tracks delivery for one accepted request: the completion fires at
// most once and never after cancellation. Every Annotator variant returns
// one as its handle.
type Call struct {
	mu        sync.Mutex
	cancelled bool
	delivered bool
	onCancel  func()
}

func NewCall() *Call {
	return &Call{}
}

// OnCancel registers fn to run when the call is cancelled, used to abort an
// in-flight HTTP request or propagate to sub-handles.
func (c *Call) OnCancel(fn func()) {
	c.mu.Lock()
	c.onCancel = fn
	c.mu.Unlock()
}

func (c *Call) Cancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelled
}

func (c *Call) Cancel() {
	c.mu.Lock()
	if c.cancelled {
		c.mu.Unlock()
		return
	}
	c.cancelled = true
	fn := c.onCancel
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Deliver invokes done unless the call was cancelled or already completed.
func (c *Call) Deliver(done Done, resp *Response, err error) {
	c.mu.Lock()
	if c.cancelled || c.delivered {
		c.mu.Unlock()
		return
	}
	c.delivered = true
	c.mu.Unlock()
	done(resp, err)
}
