package aggregate

import (
	"errors"
	"sync"
	"testing"
	"time"

	"cardvault/constants"
	"cardvault/internal/annotate"
	"cardvault/internal/annotation"
	"cardvault/internal/task"
)

// stubService is a deterministic annotate.Annotator test double. Its tag
// function runs against a fresh snapshot of the request text. A nil tag
// function with a non-nil err models a failing service; a held stub never
// calls back until released (or never, modelling a wedged service).
type stubService struct {
	tag     func(*annotation.Text)
	err     error
	release chan struct{} // nil means complete immediately
}

func (s *stubService) Annotate(req *annotate.Request, done annotate.Done) task.Handle {
	call := annotate.NewCall()
	go func() {
		if s.release != nil {
			<-s.release
		}
		if s.err != nil {
			call.Deliver(done, nil, s.err)
			return
		}
		out := annotate.Blank(req)
		if s.tag != nil {
			s.tag(out)
		}
		call.Deliver(done, &annotate.Response{Text: out}, nil)
	}()
	return call
}

func tagLine(req *annotate.Request, line int, cat constants.Category, value string) func(*annotation.Text) {
	span, _ := req.Text.LineSpan(line)
	return func(t *annotation.Text) {
		t.AddTag(cat, value, span)
	}
}

func cardRequest() *annotate.Request {
	return annotate.NewTextRequest([]string{
		"Apple Inc.",
		"apple.com",
		"Steven Jobs",
		"1 Infinite Loop",
		"Cupertino, CA 95014",
		"Tel: 786-555-1212",
	})
}

func runEngine(t *testing.T, e *Engine, req *annotate.Request) *annotate.Response {
	t.Helper()
	ch := make(chan *annotate.Response, 1)
	e.Annotate(req, func(resp *annotate.Response, err error) {
		if err != nil {
			t.Errorf("engine error: %v", err)
		}
		ch <- resp
	})
	select {
	case resp := <-ch:
		return resp
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not complete")
		return nil
	}
}

func TestEngineMergesAllServices(t *testing.T) {
	req := cardRequest()
	e := NewEngine(nil,
		Descriptor{Service: &stubService{tag: tagLine(req, 0, constants.Organization, "")}},
		Descriptor{Service: &stubService{tag: tagLine(req, 2, constants.Person, "")}},
		Descriptor{Service: &stubService{tag: tagLine(req, 1, constants.URL, "apple.com")}},
	)

	resp := runEngine(t, e, req)
	if got := len(resp.Text.Tags()); got != 3 {
		t.Fatalf("merged tags: got %d, want 3", got)
	}
	if resp.Text == req.Text {
		t.Error("response must be a snapshot, not the request text")
	}
	if got := len(req.Text.Tags()); got != 0 {
		t.Errorf("request text mutated: %d tags", got)
	}
}

func TestEngineDeliversExactlyOnce(t *testing.T) {
	req := cardRequest()
	e := NewEngine(nil,
		Descriptor{Service: &stubService{tag: tagLine(req, 0, constants.Organization, "")}},
		Descriptor{Service: &stubService{err: errors.New("boom")}},
	)

	var mu sync.Mutex
	calls := 0
	completed := make(chan struct{}, 1)
	e.Annotate(req, func(*annotate.Response, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		completed <- struct{}{}
	})

	<-completed
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("completions: got %d, want 1", calls)
	}
}

func TestEnginePrecedenceByDescriptorOrder(t *testing.T) {
	// Two services tag the identical span with different categories: the
	// first-listed service must win the region whatever the arrival order.
	req := cardRequest()
	slow := &stubService{tag: tagLine(req, 5, constants.PhoneNumber, "7865551212"), release: make(chan struct{})}
	fast := &stubService{tag: tagLine(req, 5, constants.Note, "")}

	e := NewEngine(nil,
		Descriptor{Service: slow},
		Descriptor{Service: fast},
	)

	done := make(chan *annotate.Response, 1)
	e.Annotate(req, func(resp *annotate.Response, err error) {
		done <- resp
	})
	// Let the second-listed service arrive first.
	time.Sleep(20 * time.Millisecond)
	close(slow.release)

	resp := <-done
	span, _ := req.Text.LineSpan(5)
	tags := resp.Text.TagsIn(span)
	if len(tags) != 1 {
		t.Fatalf("tags on contested span: got %d, want 1", len(tags))
	}
	if tags[0].Category != constants.PhoneNumber {
		t.Errorf("winning category: got %s, want PhoneNumber", tags[0].Category)
	}
}

func TestEngineScenarioSecondPhoneDetectorLoses(t *testing.T) {
	// A local pattern detector plus a second service tagging PhoneNumber
	// again at line 5 must yield exactly one PhoneNumber tag for that line.
	req := cardRequest()
	first := &stubService{tag: func(txt *annotation.Text) {
		for line, cat := range map[int]constants.Category{
			0: constants.Organization,
			1: constants.URL,
			2: constants.Person,
			3: constants.PostalAddress,
			4: constants.PostalAddress,
			5: constants.PhoneNumber,
		} {
			span, _ := req.Text.LineSpan(line)
			txt.AddTag(cat, "", span)
		}
	}}
	second := &stubService{tag: tagLine(req, 5, constants.PhoneNumber, "7865551212")}

	e := NewEngine(nil, Descriptor{Service: first}, Descriptor{Service: second})
	resp := runEngine(t, e, req)

	span, _ := req.Text.LineSpan(5)
	phones := 0
	for _, tag := range resp.Text.TagsIn(span) {
		if tag.Category == constants.PhoneNumber {
			phones++
		}
	}
	if phones != 1 {
		t.Errorf("phone tags on line 5: got %d, want 1", phones)
	}
	if got := len(resp.Text.Tags()); got != 6 {
		t.Errorf("total tags: got %d, want 6", got)
	}
}

func TestEngineCompletesUnderPartialFailure(t *testing.T) {
	tests := []struct {
		name     string
		fail     []bool
		wantTags int
	}{
		{"one of three fails", []bool{false, true, false}, 2},
		{"all fail", []bool{true, true, true}, 0},
		{"none fail", []bool{false, false, false}, 3},
	}
	lines := []int{0, 1, 2}
	cats := []constants.Category{constants.Organization, constants.URL, constants.Person}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := cardRequest()
			var descs []Descriptor
			for i, fail := range tc.fail {
				if fail {
					descs = append(descs, Descriptor{Service: &stubService{err: errors.New("connection refused")}})
				} else {
					descs = append(descs, Descriptor{Service: &stubService{tag: tagLine(req, lines[i], cats[i], "")}})
				}
			}
			resp := runEngine(t, NewEngine(nil, descs...), req)
			if got := len(resp.Text.Tags()); got != tc.wantTags {
				t.Errorf("tags: got %d, want %d", got, tc.wantTags)
			}
		})
	}
}

func TestEngineEmptyFanOutCompletes(t *testing.T) {
	req := cardRequest()
	resp := runEngine(t, NewEngine(nil), req)
	if got := len(resp.Text.Tags()); got != 0 {
		t.Errorf("tags: got %d, want 0", got)
	}
}

func TestEngineCancelSuppressesCompletion(t *testing.T) {
	req := cardRequest()
	wedged := &stubService{tag: tagLine(req, 0, constants.Organization, ""), release: make(chan struct{})}
	e := NewEngine(nil, Descriptor{Service: wedged})

	fired := make(chan struct{}, 1)
	h := e.Annotate(req, func(*annotate.Response, error) {
		fired <- struct{}{}
	})
	h.Cancel()
	close(wedged.release) // late sub-completion after cancel

	select {
	case <-fired:
		t.Error("completion fired after cancel")
	case <-time.After(100 * time.Millisecond):
	}
	if n := len(req.Text.Tags()); n != 0 {
		t.Errorf("accumulator mutated after cancel: %d tags", n)
	}
}

func TestEngineWedgedServiceStallsJoin(t *testing.T) {
	// A fan-out of 3 where service 2 never calls back must leave the
	// top-level completion permanently unfired. Documented stall: there is
	// no timeout in the engine.
	req := cardRequest()
	e := NewEngine(nil,
		Descriptor{Service: &stubService{tag: tagLine(req, 0, constants.Organization, "")}},
		Descriptor{Service: &stubService{release: make(chan struct{})}}, // wedged
		Descriptor{Service: &stubService{tag: tagLine(req, 2, constants.Person, "")}},
	)

	fired := make(chan struct{}, 1)
	e.Annotate(req, func(*annotate.Response, error) {
		fired <- struct{}{}
	})

	select {
	case <-fired:
		t.Error("completion fired despite a wedged sub-service")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestEnginesNest(t *testing.T) {
	req := cardRequest()
	inner := NewEngine(nil,
		Descriptor{Service: &stubService{tag: tagLine(req, 0, constants.Organization, "")}},
	)
	outer := NewEngine(nil,
		Descriptor{Service: inner},
		Descriptor{Service: &stubService{tag: tagLine(req, 2, constants.Person, "")}},
	)

	resp := runEngine(t, outer, req)
	got := map[constants.Category]bool{}
	for _, tag := range resp.Text.Tags() {
		got[tag.Category] = true
	}
	if !got[constants.Organization] || !got[constants.Person] {
		t.Errorf("nested merge missing tags: %v", resp.Text.Tags())
	}
}

func TestEngineNestedEngineYieldsToEarlierService(t *testing.T) {
	// A nested engine contends for spans at its own descriptor position: a
	// first-listed plain service must win a contested span even when the
	// nested engine's own join completes long before it.
	req := cardRequest()
	slow := &stubService{tag: tagLine(req, 5, constants.PhoneNumber, "7865551212"), release: make(chan struct{})}
	nested := NewEngine(nil,
		Descriptor{Service: &stubService{tag: tagLine(req, 5, constants.Note, "")}},
	)

	outer := NewEngine(nil,
		Descriptor{Service: slow},
		Descriptor{Service: nested},
	)

	done := make(chan *annotate.Response, 1)
	outer.Annotate(req, func(resp *annotate.Response, err error) {
		done <- resp
	})
	// Let the nested engine finish its own join first.
	time.Sleep(20 * time.Millisecond)
	close(slow.release)

	resp := <-done
	span, _ := req.Text.LineSpan(5)
	tags := resp.Text.TagsIn(span)
	if len(tags) != 1 {
		t.Fatalf("tags on contested span: got %d, want 1", len(tags))
	}
	if tags[0].Category != constants.PhoneNumber {
		t.Errorf("winning category: got %s, want PhoneNumber", tags[0].Category)
	}
}

func TestEngineSiblingNestedEngines(t *testing.T) {
	// Two nested engines complete their joins on independent goroutines;
	// each must deliver its own snapshot so the shared request text sees
	// no concurrent writes.
	req := cardRequest()
	left := NewEngine(nil,
		Descriptor{Service: &stubService{tag: tagLine(req, 0, constants.Organization, "")}},
		Descriptor{Service: &stubService{tag: tagLine(req, 1, constants.URL, "apple.com")}},
	)
	right := NewEngine(nil,
		Descriptor{Service: &stubService{tag: tagLine(req, 2, constants.Person, "")}},
		Descriptor{Service: &stubService{tag: tagLine(req, 5, constants.PhoneNumber, "7865551212")}},
	)

	outer := NewEngine(nil,
		Descriptor{Service: left},
		Descriptor{Service: right},
	)

	resp := runEngine(t, outer, req)
	if got := len(resp.Text.Tags()); got != 4 {
		t.Fatalf("merged tags: got %d, want 4", got)
	}
	if got := len(req.Text.Tags()); got != 0 {
		t.Errorf("request text mutated: %d tags", got)
	}
}
