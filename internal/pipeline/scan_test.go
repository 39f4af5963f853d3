package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"cardvault/constants"
	"cardvault/internal/aggregate"
	"cardvault/internal/annotate"
	"cardvault/internal/annotation"
	"cardvault/internal/entity"
	"cardvault/internal/repository"
	"cardvault/internal/task"
)

const cardText = "Apple Inc.\napple.com\nSteven Jobs\n1 Infinite Loop\nCupertino, CA 95014\nTel: 786-555-1212"

// fakeStore implements the three repository interfaces in memory.
type fakeStore struct {
	mu     sync.Mutex
	images map[uuid.UUID][]byte
	fields []*entity.Field
	jobs   map[uuid.UUID]*entity.ScanJob

	imageErr  error
	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		images: map[uuid.UUID][]byte{},
		jobs:   map[uuid.UUID]*entity.ScanJob{},
	}
}

func (f *fakeStore) Create(ctx context.Context, name string, image []byte, ext string) (*entity.Card, error) {
	id := uuid.New()
	f.mu.Lock()
	f.images[id] = image
	f.mu.Unlock()
	return &entity.Card{ID: id, DisplayName: name, Image: image, ImageExt: ext}, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Card, error) {
	return &entity.Card{ID: id}, nil
}

func (f *fakeStore) Image(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.images[id], nil
}

func (f *fakeStore) List(ctx context.Context) ([]*entity.Card, error) { return nil, nil }
func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) error   { return nil }

func (f *fakeStore) Insert(ctx context.Context, cardID uuid.UUID, fi repository.FieldInsert) (*entity.Field, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	fld := &entity.Field{
		ID:       uuid.New(),
		CardID:   cardID,
		Category: string(fi.Category),
		RawText:  fi.RawText,
		Value:    fi.Value,
	}
	f.mu.Lock()
	f.fields = append(f.fields, fld)
	f.mu.Unlock()
	return fld, nil
}

func (f *fakeStore) ListByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Field, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Field(nil), f.fields...), nil
}

func (f *fakeStore) DeleteByCard(ctx context.Context, cardID uuid.UUID) (int, error) { return 0, nil }

func (f *fakeStore) Start(ctx context.Context, cardID uuid.UUID) (*entity.ScanJob, error) {
	job := &entity.ScanJob{ID: uuid.New(), CardID: cardID, Status: string(constants.ScanStatusPending)}
	f.mu.Lock()
	f.jobs[job.ID] = job
	f.mu.Unlock()
	return job, nil
}

func (f *fakeStore) MarkActive(ctx context.Context, jobID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[jobID].Status = string(constants.ScanStatusActive)
	return nil
}

func (f *fakeStore) Finish(ctx context.Context, jobID uuid.UUID, ocrText string, fieldCount int, needsReview bool, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job := f.jobs[jobID]
	job.Status = string(constants.ScanStatusCompleted)
	job.FieldCount = fieldCount
	job.NeedsReview = needsReview
	if ocrText != "" {
		job.OCRText = &ocrText
	}
	if errorMessage != "" {
		job.ErrorMessage = &errorMessage
	}
	return nil
}

// scanJobAdapter satisfies ScanJobRepository's GetByID without clashing
// with CardRepository's.
type scanJobAdapter struct{ *fakeStore }

func (a scanJobAdapter) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ScanJob, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.jobs[jobID], nil
}

// fakeVision returns a fixed OCR result: the card text tagged Note, plus
// optional face/logo detections.
type fakeVision struct {
	text     string
	withFace bool
	err      error
	wedged   bool
}

func (v *fakeVision) Annotate(req *annotate.Request, done annotate.Done) task.Handle {
	call := annotate.NewCall()
	go func() {
		if v.wedged {
			return
		}
		if v.err != nil {
			call.Deliver(done, nil, v.err)
			return
		}
		out := annotation.New(v.text, "\n")
		full := annotation.NewSpan(0, len(out.Content()))
		out.AddTag(constants.Note, "", full)
		if v.withFace {
			out.AddTag(constants.Face, "", full)
			out.AddShape(annotation.Polygon{{X: 10, Y: 10}, {X: 40, Y: 10}, {X: 40, Y: 40}, {X: 10, Y: 40}}, full)
		}
		call.Deliver(done, &annotate.Response{Text: out}, nil)
	}()
	return call
}

func newTestPipeline(store *fakeStore, vision annotate.Annotator) *Pipeline {
	engine := aggregate.NewEngine(nil,
		aggregate.Descriptor{Service: annotate.NewPatternDetector(nil)},
	)
	return New(store, store, scanJobAdapter{store}, vision, engine, nil)
}

func runScan(t *testing.T, p *Pipeline, cardID uuid.UUID) []constants.ScanStatus {
	t.Helper()
	var mu sync.Mutex
	var states []constants.ScanStatus
	tk, _, err := p.NewScan(context.Background(), cardID, func(st constants.ScanStatus) {
		mu.Lock()
		states = append(states, st)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("NewScan: %v", err)
	}
	tk.Start()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if tk.State() == task.StateFinished {
			mu.Lock()
			defer mu.Unlock()
			return states
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("scan did not finish (state %s)", tk.State())
	return nil
}

func TestScanPersistsExtractedFields(t *testing.T) {
	store := newFakeStore()
	card, _ := store.Create(context.Background(), "steve", []byte("jpegbytes"), "jpg")

	p := newTestPipeline(store, &fakeVision{text: cardText})
	states := runScan(t, p, card.ID)

	want := []constants.ScanStatus{
		constants.ScanStatusPending,
		constants.ScanStatusActive,
		constants.ScanStatusCompleted,
	}
	if len(states) != len(want) {
		t.Fatalf("progress states: got %v", states)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("progress order: got %v, want %v", states, want)
		}
	}

	byCat := map[string]int{}
	for _, f := range store.fields {
		byCat[f.Category]++
	}
	if byCat[string(constants.PhoneNumber)] != 1 {
		t.Errorf("phone fields: got %d, want 1", byCat[string(constants.PhoneNumber)])
	}
	if byCat[string(constants.URL)] != 1 {
		t.Errorf("url fields: got %d, want 1", byCat[string(constants.URL)])
	}
	if byCat[string(constants.PostalAddress)] != 2 {
		t.Errorf("address fields: got %d, want 2", byCat[string(constants.PostalAddress)])
	}
}

func TestScanPersistsFaceDetection(t *testing.T) {
	store := newFakeStore()
	card, _ := store.Create(context.Background(), "", []byte("img"), "png")

	p := newTestPipeline(store, &fakeVision{text: cardText, withFace: true})
	runScan(t, p, card.ID)

	faces := 0
	for _, f := range store.fields {
		if f.Category == string(constants.Face) {
			faces++
		}
	}
	if faces != 1 {
		t.Errorf("face fields: got %d, want 1", faces)
	}
}

func TestScanCompletesDespiteVisionFailure(t *testing.T) {
	store := newFakeStore()
	card, _ := store.Create(context.Background(), "", []byte("img"), "jpg")

	p := newTestPipeline(store, &fakeVision{err: errors.New("503 from vendor")})
	states := runScan(t, p, card.ID)

	if states[len(states)-1] != constants.ScanStatusCompleted {
		t.Fatalf("final state: got %v", states)
	}
	if len(store.fields) != 0 {
		t.Errorf("fields persisted without OCR text: %d", len(store.fields))
	}

	for _, job := range store.jobs {
		if !job.NeedsReview {
			t.Error("job without OCR text should need review")
		}
		if job.ErrorMessage == nil || !strings.Contains(*job.ErrorMessage, "image annotation") {
			t.Errorf("error message not recorded: %v", job.ErrorMessage)
		}
	}
}

func TestScanCompletesDespitePersistFailure(t *testing.T) {
	store := newFakeStore()
	card, _ := store.Create(context.Background(), "", []byte("img"), "jpg")
	store.insertErr = errors.New("disk full")

	p := newTestPipeline(store, &fakeVision{text: cardText})
	states := runScan(t, p, card.ID)

	if states[len(states)-1] != constants.ScanStatusCompleted {
		t.Fatalf("final state: got %v", states)
	}
	for _, job := range store.jobs {
		if job.FieldCount != 0 {
			t.Errorf("field count: got %d, want 0", job.FieldCount)
		}
	}
}

func TestScanCancelSuppressesCompletion(t *testing.T) {
	store := newFakeStore()
	card, _ := store.Create(context.Background(), "", []byte("img"), "jpg")

	p := newTestPipeline(store, &fakeVision{wedged: true})
	var mu sync.Mutex
	var states []constants.ScanStatus
	tk, _, err := p.NewScan(context.Background(), card.ID, func(st constants.ScanStatus) {
		mu.Lock()
		states = append(states, st)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("NewScan: %v", err)
	}
	tk.Start()
	time.Sleep(20 * time.Millisecond)
	tk.Cancel()
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, st := range states {
		if st == constants.ScanStatusCompleted {
			t.Error("completed fired after cancel")
		}
	}
	if tk.State() != task.StateCancelled {
		t.Errorf("task state: got %s", tk.State())
	}
}

func TestScanRunsOnQueue(t *testing.T) {
	store := newFakeStore()
	card, _ := store.Create(context.Background(), "", []byte("img"), "jpg")
	p := newTestPipeline(store, &fakeVision{text: cardText})

	q := task.NewQueue(nil, task.WithWorkers(2))
	defer q.Shutdown(context.Background())

	tk, _, err := p.NewScan(context.Background(), card.ID, nil)
	if err != nil {
		t.Fatalf("NewScan: %v", err)
	}
	q.Add(tk)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if tk.State() == task.StateFinished {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("queued scan did not finish (state %s)", tk.State())
}
