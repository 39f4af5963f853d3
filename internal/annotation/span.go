package annotation

// Span is a half-open [Start, End) range over byte positions in the
// flattened content of a Text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func NewSpan(start, end int) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether the two spans share at least one position.
// Zero-width spans overlap nothing.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Point is a vertex of a shape polygon, in image pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is the bounding geometry reported by a vision annotator,
// typically four vertices but not required to be.
type Polygon []Point
