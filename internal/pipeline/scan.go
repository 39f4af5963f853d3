// Package pipeline orchestrates the end-to-end scan of one captured card:
// fetch the image from the store, run image annotation, fan the recognized
// text out through the aggregation engine, and persist one field record per
// recognized entity, reporting discrete lifecycle states along the way.
package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"cardvault/constants"
	"cardvault/internal/annotate"
	"cardvault/internal/annotation"
	"cardvault/internal/entity"
	"cardvault/internal/repository"
	"cardvault/internal/task"
)

// Progress receives the scan lifecycle states, strictly in the order
// PENDING, ACTIVE, COMPLETED, once per scan invocation. Consumers marshal
// delivery onto their own context; the pipeline calls from its own
// goroutines.
type Progress func(constants.ScanStatus)

// Pipeline holds the collaborators shared by every scan.
type Pipeline struct {
	Cards  repository.CardRepository
	Fields repository.FieldRepository
	Jobs   repository.ScanJobRepository
	Vision annotate.Annotator // image annotation service
	Text   annotate.Annotator // text aggregation engine
	Logger *slog.Logger
}

func New(cards repository.CardRepository, fields repository.FieldRepository, jobs repository.ScanJobRepository, vision, text annotate.Annotator, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Cards:  cards,
		Fields: fields,
		Jobs:   jobs,
		Vision: vision,
		Text:   text,
		Logger: logger,
	}
}

// scan is the per-invocation state. Failures at a sub-step are logged and
// the scan proceeds with whatever partial data it obtained; there is no
// error state, no retry, and no rollback of earlier writes in the batch.
type scan struct {
	p        *Pipeline
	cardID   uuid.UUID
	jobID    uuid.UUID
	progress Progress

	mu       sync.Mutex
	handles  []task.Handle
	lastErr  string
	ocrText  string
	fields   int
	tk       *task.Task
}

// NewScan records a pending scan job for cardID and builds a
// queue-schedulable task that runs it. The job row exists before the task
// is scheduled so callers can poll it immediately. Cancelling the task
// propagates to all in-flight annotation sub-handles and suppresses the
// completed transition.
func (p *Pipeline) NewScan(ctx context.Context, cardID uuid.UUID, progress Progress) (*task.Task, *entity.ScanJob, error) {
	if progress == nil {
		progress = func(constants.ScanStatus) {}
	}
	job, err := p.Jobs.Start(ctx, cardID)
	if err != nil {
		return nil, nil, err
	}
	s := &scan{p: p, cardID: cardID, jobID: job.ID, progress: progress}
	tk := task.New(s.run)
	tk.OnCancel(s.cancel)
	s.tk = tk
	progress(constants.ScanStatusPending)
	return tk, job, nil
}

func (s *scan) cancel() {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.mu.Unlock()
	for _, h := range handles {
		h.Cancel()
	}
	s.p.Logger.Info("scan.cancelled", "card_id", s.cardID)
}

func (s *scan) track(h task.Handle) {
	s.mu.Lock()
	s.handles = append(s.handles, h)
	s.mu.Unlock()
}

func (s *scan) fail(step string, err error) {
	s.p.Logger.Error("scan.step.failed", "card_id", s.cardID, "step", step, "error", err)
	s.mu.Lock()
	s.lastErr = step + ": " + err.Error()
	s.mu.Unlock()
}

// join counts the scan's async sub-steps: one enter per dispatched step,
// one leave when that step (persistence included) completes. The finish
// continuation runs on the goroutine performing the final leave.
type join struct {
	mu        sync.Mutex
	remaining int
	notify    func()
}

func (j *join) enter() {
	j.mu.Lock()
	j.remaining++
	j.mu.Unlock()
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

func (s *scan) run(done func()) {
	ctx := context.Background()
	logger := s.p.Logger

	if err := s.p.Jobs.MarkActive(ctx, s.jobID); err != nil {
		s.fail("activate job", err)
	}
	s.progress(constants.ScanStatusActive)
	logger.Info("scan.active", "card_id", s.cardID, "job_id", s.jobID)

	j := &join{}
	j.notify = func() { s.finish(ctx, done) }

	// The whole scan holds one entry so sub-steps entered from callbacks
	// can never race the join to zero before dispatch completes.
	j.enter()

	image, err := s.p.Cards.Image(ctx, s.cardID)
	if err != nil {
		s.fail("load image", err)
		j.leave()
		return
	}

	j.enter()
	h := s.p.Vision.Annotate(annotate.NewImageRequest(image), func(resp *annotate.Response, verr error) {
		defer j.leave()
		if verr != nil {
			s.fail("image annotation", verr)
			return
		}
		s.route(ctx, j, resp.Text)
	})
	s.track(h)

	j.leave()
}

// route dispatches each image annotation by category. Note carries the
// recognized text block and feeds the aggregation step; Face and Logo
// persist as fields with their detection geometry span. Remaining
// categories are explicit no-ops reserved for future handling.
func (s *scan) route(ctx context.Context, j *join, img *annotation.Text) {
	for _, tag := range img.Tags() {
		switch tag.Category {
		case constants.Note:
			s.annotateText(ctx, j, img.Slice(tag.Span))
		case constants.Face, constants.Logo:
			s.persistTag(ctx, img, tag)
		default:
			// reserved
		}
	}
}

// annotateText submits the first recognized text block to the aggregation
// engine and persists the merged entities. Only the first block feeds
// aggregation; later Note tags would re-run the same content.
func (s *scan) annotateText(ctx context.Context, j *join, content string) {
	s.mu.Lock()
	already := s.ocrText != ""
	if !already {
		s.ocrText = content
	}
	s.mu.Unlock()
	if already || content == "" {
		return
	}

	req := &annotate.Request{Text: annotation.New(content, annotation.Separator)}
	j.enter()
	h := s.p.Text.Annotate(req, func(resp *annotate.Response, aerr error) {
		defer j.leave()
		if aerr != nil {
			s.fail("text aggregation", aerr)
			return
		}
		for _, tag := range resp.Text.Tags() {
			s.persistTag(ctx, resp.Text, tag)
		}
	})
	s.track(h)
}

// persistTag writes one field record. All calls happen sequentially on the
// scan's callback chain, never concurrently, which keeps the store's write
// path serialized.
func (s *scan) persistTag(ctx context.Context, txt *annotation.Text, tag annotation.Tag) {
	if !persistable(tag.Category) {
		return
	}
	_, err := s.p.Fields.Insert(ctx, s.cardID, repository.FieldInsert{
		Category:  tag.Category,
		RawText:   txt.Slice(tag.Span),
		Value:     tag.Value,
		SpanStart: tag.Span.Start,
		SpanEnd:   tag.Span.End,
	})
	if err != nil {
		s.fail("persist field", err)
		return
	}
	s.mu.Lock()
	s.fields++
	s.mu.Unlock()
}

func persistable(cat constants.Category) bool {
	switch cat {
	case constants.Unknown, constants.Note:
		return false
	}
	return true
}

func (s *scan) finish(ctx context.Context, done func()) {
	if s.tk.State() == task.StateCancelled {
		// done would be discarded by the task anyway; skip the store write
		// so a cancelled scan leaves no COMPLETED row behind.
		return
	}

	s.mu.Lock()
	ocrText := s.ocrText
	fields := s.fields
	lastErr := s.lastErr
	s.mu.Unlock()

	needsReview := ocrText == ""
	if err := s.p.Jobs.Finish(ctx, s.jobID, ocrText, fields, needsReview, lastErr); err != nil {
		// Partial persistence is accepted; the scan still completes.
		s.fail("finish job", err)
	}

	s.p.Logger.Info("scan.completed",
		"card_id", s.cardID,
		"job_id", s.jobID,
		"fields", fields,
		"needs_review", needsReview,
	)
	s.progress(constants.ScanStatusCompleted)
	done()
}
