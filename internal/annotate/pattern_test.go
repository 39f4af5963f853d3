package annotate

import (
	"testing"
	"time"

	"cardvault/constants"
)

func annotateSync(t *testing.T, a Annotator, req *Request) *Response {
	t.Helper()
	ch := make(chan *Response, 1)
	a.Annotate(req, func(resp *Response, err error) {
		if err != nil {
			t.Errorf("annotate: %v", err)
		}
		ch <- resp
	})
	select {
	case resp := <-ch:
		return resp
	case <-time.After(2 * time.Second):
		t.Fatal("annotate did not complete")
		return nil
	}
}

func categories(resp *Response) map[constants.Category]int {
	m := map[constants.Category]int{}
	for _, tag := range resp.Text.Tags() {
		m[tag.Category]++
	}
	return m
}

func TestPatternDetectorBusinessCard(t *testing.T) {
	req := NewTextRequest([]string{
		"Apple Inc.",
		"apple.com",
		"Steven Jobs",
		"1 Infinite Loop",
		"Cupertino, CA 95014",
		"Tel: 786-555-1212",
	})
	resp := annotateSync(t, NewPatternDetector(nil), req)

	got := categories(resp)
	if got[constants.URL] != 1 {
		t.Errorf("url tags: got %d, want 1", got[constants.URL])
	}
	if got[constants.PhoneNumber] != 1 {
		t.Errorf("phone tags: got %d, want 1", got[constants.PhoneNumber])
	}
	if got[constants.PostalAddress] != 2 {
		t.Errorf("address tags: got %d, want 2", got[constants.PostalAddress])
	}

	for _, tag := range resp.Text.Tags() {
		if tag.Category == constants.PhoneNumber && tag.Value != "7865551212" {
			t.Errorf("phone normalized value: got %q", tag.Value)
		}
	}
}

func TestPatternDetectorTagSpansCoverMatches(t *testing.T) {
	req := NewTextRequest([]string{"Email: steve@apple.com", "apple.com"})
	resp := annotateSync(t, NewPatternDetector(nil), req)

	var email, url int
	for _, tag := range resp.Text.Tags() {
		switch tag.Category {
		case constants.Email:
			email++
			if got := resp.Text.Slice(tag.Span); got != "steve@apple.com" {
				t.Errorf("email span covers %q", got)
			}
			if tag.Value != "steve@apple.com" {
				t.Errorf("email value: got %q", tag.Value)
			}
		case constants.URL:
			url++
			if got := resp.Text.Slice(tag.Span); got != "apple.com" {
				t.Errorf("url span covers %q", got)
			}
		}
	}
	// The domain inside the email address must not produce a second URL tag.
	if email != 1 || url != 1 {
		t.Errorf("tags: email=%d url=%d, want 1/1", email, url)
	}
}

func TestPatternDetectorDoesNotMutateRequestText(t *testing.T) {
	req := NewTextRequest([]string{"Tel: 786-555-1212"})
	_ = annotateSync(t, NewPatternDetector(nil), req)

	if n := len(req.Text.Tags()); n != 0 {
		t.Errorf("request text mutated: %d tags", n)
	}
}

func TestPatternDetectorCancelSuppressesCallback(t *testing.T) {
	req := NewTextRequest([]string{"Tel: 786-555-1212"})
	fired := make(chan struct{}, 1)
	h := NewPatternDetector(nil).Annotate(req, func(*Response, error) {
		fired <- struct{}{}
	})
	h.Cancel()

	select {
	case <-fired:
		// The scan may have completed before Cancel; both outcomes are
		// contractual as long as delivery is at most once. Only a late
		// delivery after Cancel would be a bug, and deliver() guards it.
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPatternDetectorNoMatches(t *testing.T) {
	req := NewTextRequest([]string{"hello world"})
	resp := annotateSync(t, NewPatternDetector(nil), req)
	if n := len(resp.Text.Tags()); n != 0 {
		t.Errorf("tags on plain text: got %d, want 0", n)
	}
}
