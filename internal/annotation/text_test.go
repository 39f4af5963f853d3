package annotation

import (
	"testing"

	"cardvault/constants"
)

var cardLines = []string{
	"Apple Inc.",
	"apple.com",
	"Steven Jobs",
	"1 Infinite Loop",
	"Cupertino, CA 95014",
	"Tel: 786-555-1212",
}

func TestNewFromLinesRecordsLineSpans(t *testing.T) {
	txt := NewFromLines(cardLines)

	if got := txt.LineCount(); got != len(cardLines) {
		t.Fatalf("line count: got %d, want %d", got, len(cardLines))
	}

	for i, want := range cardLines {
		span, ok := txt.LineSpan(i)
		if !ok {
			t.Fatalf("line %d: no span", i)
		}
		if got := txt.Slice(span); got != want {
			t.Errorf("line %d: span %v covers %q, want %q", i, span, got, want)
		}
	}
}

func TestNewSplitsOnDelimiter(t *testing.T) {
	raw := "Apple Inc.\napple.com\nSteven Jobs"
	txt := New(raw, "\n")

	if got := txt.LineCount(); got != 3 {
		t.Fatalf("line count: got %d, want 3", got)
	}
	if line, _ := txt.Line(1); line != "apple.com" {
		t.Errorf("line 1: got %q", line)
	}
}

func TestNewEmptyDelimiterSingleLine(t *testing.T) {
	txt := New("Apple Inc.", "")
	if got := txt.LineCount(); got != 1 {
		t.Fatalf("line count: got %d, want 1", got)
	}
	if txt.Content() != "Apple Inc." {
		t.Errorf("content: got %q", txt.Content())
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{0, 5}, Span{5, 10}, false},
		{"adjacent reversed", Span{5, 10}, Span{0, 5}, false},
		{"single shared position", Span{0, 6}, Span{5, 10}, true},
		{"identical", Span{3, 7}, Span{3, 7}, true},
		{"contained", Span{0, 10}, Span{4, 6}, true},
		{"zero width inside", Span{2, 2}, Span{0, 10}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("%v overlaps %v: got %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("overlap not symmetric for %v / %v", tc.a, tc.b)
			}
		})
	}
}

func TestTagsInReturnsOverlapping(t *testing.T) {
	txt := NewFromLines(cardLines)

	phoneSpan, _ := txt.LineSpan(5)
	orgSpan, _ := txt.LineSpan(0)
	txt.AddTag(constants.Organization, "", orgSpan)
	txt.AddTag(constants.PhoneNumber, "7865551212", phoneSpan)

	got := txt.TagsIn(phoneSpan)
	if len(got) != 1 {
		t.Fatalf("tags in phone line: got %d, want 1", len(got))
	}
	if got[0].Category != constants.PhoneNumber {
		t.Errorf("category: got %s", got[0].Category)
	}
	if got[0].Value != "7865551212" {
		t.Errorf("value: got %q", got[0].Value)
	}

	if tags := txt.TagsIn(Span{0, len(txt.Content())}); len(tags) != 2 {
		t.Errorf("whole-content query: got %d tags, want 2", len(tags))
	}
}

func TestTagsInKeepsInsertionOrderAndDuplicates(t *testing.T) {
	txt := NewFromLines(cardLines)
	span, _ := txt.LineSpan(5)

	// Two detectors firing on the same region is the expected case.
	txt.AddTag(constants.PhoneNumber, "7865551212", span)
	txt.AddTag(constants.Note, "", Span{Start: span.Start + 2, End: span.End})

	got := txt.TagsIn(span)
	if len(got) != 2 {
		t.Fatalf("got %d tags, want 2", len(got))
	}
	if got[0].Category != constants.PhoneNumber || got[1].Category != constants.Note {
		t.Errorf("insertion order not preserved: %v", got)
	}
}

func TestShapesIn(t *testing.T) {
	txt := NewFromLines(cardLines)
	span, _ := txt.LineSpan(0)
	poly := Polygon{{0, 0}, {120, 0}, {120, 24}, {0, 24}}
	txt.AddShape(poly, span)

	shapes := txt.ShapesIn(Span{Start: span.Start, End: span.Start + 1})
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	if len(shapes[0].Polygon) != 4 {
		t.Errorf("polygon vertices: got %d, want 4", len(shapes[0].Polygon))
	}

	other, _ := txt.LineSpan(2)
	if shapes := txt.ShapesIn(other); len(shapes) != 0 {
		t.Errorf("unrelated line: got %d shapes, want 0", len(shapes))
	}
}

func TestLineIndex(t *testing.T) {
	txt := NewFromLines(cardLines)
	span, _ := txt.LineSpan(3)

	idx, ok := txt.LineIndex(Span{Start: span.Start + 2, End: span.Start + 5})
	if !ok || idx != 3 {
		t.Errorf("line index: got %d ok=%v, want 3", idx, ok)
	}

	if _, ok := txt.LineIndex(Span{Start: len(txt.Content()) + 5, End: len(txt.Content()) + 8}); ok {
		t.Error("out-of-range span should not resolve to a line")
	}
}
