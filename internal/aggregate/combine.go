// Package aggregate fans an annotation request out to an ordered list of
// annotation services, joins their results with completion counting, and
// merges them into one consolidated response delivered exactly once.
package aggregate

import (
	"cardvault/internal/annotate"
	"cardvault/internal/annotation"
)

// Combine merges the annotations of src into acc. Implementations must be
// append-only on acc and idempotent per pair: combining the same src twice
// adds nothing after the first pass. They run on the single join
// continuation goroutine, never concurrently.
type Combine func(acc, src *annotation.Text)

// AppendDistinct is the default combine rule: a tag from src is added only
// when acc holds no tag overlapping its span, so whichever service merged
// first owns a contested region. Shapes carry no conflict semantics (a
// word box and a block box legitimately cover the same region) so they are
// appended only when acc lacks an identical shape span, which keeps the
// pair-wise idempotence of the rule.
func AppendDistinct(acc, src *annotation.Text) {
	for _, tag := range src.Tags() {
		if len(acc.TagsIn(tag.Span)) > 0 {
			continue
		}
		acc.AddTag(tag.Category, tag.Value, tag.Span)
	}
	for _, sh := range src.Shapes() {
		if hasShapeAt(acc, sh.Span) {
			continue
		}
		acc.AddShape(sh.Polygon, sh.Span)
	}
}

func hasShapeAt(acc *annotation.Text, span annotation.Span) bool {
	for _, sh := range acc.Shapes() {
		if sh.Span == span {
			return true
		}
	}
	return false
}

// AppendAll adds every tag and shape from src regardless of overlap. Useful
// as a substitute combine when a caller wants both the raw and normalized
// forms of a region.
func AppendAll(acc, src *annotation.Text) {
	for _, tag := range src.Tags() {
		acc.AddTag(tag.Category, tag.Value, tag.Span)
	}
	for _, sh := range src.Shapes() {
		acc.AddShape(sh.Polygon, sh.Span)
	}
}

// Descriptor pairs an annotation service with the combine function applied
// to its result. List position is merge precedence: results merge strictly
// in descriptor order whatever their arrival order, so the first-listed
// service wins contested spans under AppendDistinct.
type Descriptor struct {
	Service annotate.Annotator
	Combine Combine // nil means AppendDistinct
}
