// Package annotation holds the span-tagged text model shared by all
// annotators: immutable content with recoverable line boundaries, plus
// append-only tag and shape annotations supporting overlap queries.
package annotation

import (
	"strings"

	"cardvault/constants"
)

// Separator joins logical lines into the flattened content string.
const Separator = "\n"

// Tag records that an entity of some category was recognized at a span.
// Value carries the normalized form when the producing annotator has one
// (e.g. a digits-only phone number); otherwise it is empty and the raw
// content at Span is authoritative.
type Tag struct {
	Category constants.Category `json:"category"`
	Value    string             `json:"value,omitempty"`
	Span     Span               `json:"span"`
}

// Shape ties bounding geometry to a span of the content.
type Shape struct {
	Polygon Polygon `json:"polygon"`
	Span    Span    `json:"span"`
}

// Text is the accumulator every annotator contributes to: one flattened
// content string, the exact sub-range each original line occupies, and
// appended annotations. Content and line ranges never change after
// construction; tags and shapes are append-only and spans are never edited
// in place. Overlapping tags are the expected case, not an error.
//
// Text is not safe for concurrent mutation. Ownership belongs to the
// in-flight aggregation until its merged response is handed to the caller;
// all appends must happen on one coordinating goroutine.
type Text struct {
	content string
	lines   []Span
	tags    []Tag
	shapes  []Shape
}

// New builds a Text by splitting raw on delimiter and rejoining the pieces
// with Separator. An empty delimiter treats raw as a single line.
func New(raw, delimiter string) *Text {
	if delimiter == "" {
		return NewFromLines([]string{raw})
	}
	return NewFromLines(strings.Split(raw, delimiter))
}

// NewFromLines builds a Text from pre-split lines, recording for each line
// the exact sub-range it occupies in the flattened content (accounting for
// separator width) so later logic can translate between line index and
// absolute span.
func NewFromLines(lines []string) *Text {
	t := &Text{
		content: strings.Join(lines, Separator),
		lines:   make([]Span, 0, len(lines)),
	}
	offset := 0
	for i, line := range lines {
		if i > 0 {
			offset += len(Separator)
		}
		t.lines = append(t.lines, Span{Start: offset, End: offset + len(line)})
		offset += len(line)
	}
	return t
}

func (t *Text) Content() string {
	return t.content
}

func (t *Text) LineCount() int {
	return len(t.lines)
}

// LineSpan returns the absolute span of line i.
func (t *Text) LineSpan(i int) (Span, bool) {
	if i < 0 || i >= len(t.lines) {
		return Span{}, false
	}
	return t.lines[i], true
}

// Line returns the content of line i.
func (t *Text) Line(i int) (string, bool) {
	span, ok := t.LineSpan(i)
	if !ok {
		return "", false
	}
	return t.content[span.Start:span.End], true
}

// LineIndex returns the index of the first line whose span overlaps s.
func (t *Text) LineIndex(s Span) (int, bool) {
	for i, ls := range t.lines {
		if ls.Overlaps(s) {
			return i, true
		}
	}
	return 0, false
}

// Slice returns the content covered by s, clamped to the content bounds.
func (t *Text) Slice(s Span) string {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > len(t.content) {
		s.End = len(t.content)
	}
	if s.Start >= s.End {
		return ""
	}
	return t.content[s.Start:s.End]
}

// AddTag appends a tag annotation. O(1), never fails.
func (t *Text) AddTag(category constants.Category, value string, span Span) {
	t.tags = append(t.tags, Tag{Category: category, Value: value, Span: span})
}

// AddShape appends a shape annotation tied to span.
func (t *Text) AddShape(polygon Polygon, span Span) {
	t.shapes = append(t.shapes, Shape{Polygon: polygon, Span: span})
}

// Tags returns all tag annotations in insertion order.
func (t *Text) Tags() []Tag {
	return t.tags
}

// Shapes returns all shape annotations in insertion order.
func (t *Text) Shapes() []Shape {
	return t.shapes
}

// TagsIn returns every tag whose span overlaps query, in insertion order,
// without dedup. Overlap rather than containment is deliberate: upstream
// detectors disagree on exact boundaries, and consumers want anything
// touching the region.
func (t *Text) TagsIn(query Span) []Tag {
	var out []Tag
	for _, tag := range t.tags {
		if tag.Span.Overlaps(query) {
			out = append(out, tag)
		}
	}
	return out
}

// ShapesIn returns every shape whose span overlaps query, in insertion order.
func (t *Text) ShapesIn(query Span) []Shape {
	var out []Shape
	for _, sh := range t.shapes {
		if sh.Span.Overlaps(query) {
			out = append(out, sh)
		}
	}
	return out
}
