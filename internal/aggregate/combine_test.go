package aggregate

import (
	"testing"

	"cardvault/constants"
	"cardvault/internal/annotation"
)

func combineFixtures() (acc, src *annotation.Text) {
	lines := []string{"Apple Inc.", "Steven Jobs", "786-555-1212"}
	acc = annotation.NewFromLines(lines)
	src = annotation.NewFromLines(lines)

	orgSpan, _ := acc.LineSpan(0)
	acc.AddTag(constants.Organization, "", orgSpan)
	acc.AddShape(annotation.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}}, orgSpan)

	// src contests line 0 and contributes lines 1 and 2.
	src.AddTag(constants.Note, "", orgSpan)
	personSpan, _ := src.LineSpan(1)
	src.AddTag(constants.Person, "", personSpan)
	phoneSpan, _ := src.LineSpan(2)
	src.AddTag(constants.PhoneNumber, "7865551212", phoneSpan)
	src.AddShape(annotation.Polygon{{X: 0, Y: 1}, {X: 1, Y: 1}}, orgSpan)
	src.AddShape(annotation.Polygon{{X: 0, Y: 2}, {X: 1, Y: 2}}, personSpan)
	return acc, src
}

func TestAppendDistinct(t *testing.T) {
	acc, src := combineFixtures()
	AppendDistinct(acc, src)

	if got := len(acc.Tags()); got != 3 {
		t.Fatalf("tags after merge: got %d, want 3", got)
	}
	orgSpan, _ := acc.LineSpan(0)
	contested := acc.TagsIn(orgSpan)
	if len(contested) != 1 || contested[0].Category != constants.Organization {
		t.Errorf("contested span: got %v, want the pre-existing Organization tag", contested)
	}
	// The identical-span shape from src is dropped, the new one kept.
	if got := len(acc.Shapes()); got != 2 {
		t.Errorf("shapes after merge: got %d, want 2", got)
	}
}

func TestAppendDistinctIdempotentPerPair(t *testing.T) {
	once, src := combineFixtures()
	AppendDistinct(once, src)

	twice, src2 := combineFixtures()
	AppendDistinct(twice, src2)
	AppendDistinct(twice, src2)

	if got, want := len(twice.Tags()), len(once.Tags()); got != want {
		t.Errorf("tags after double merge: got %d, want %d", got, want)
	}
	if got, want := len(twice.Shapes()), len(once.Shapes()); got != want {
		t.Errorf("shapes after double merge: got %d, want %d", got, want)
	}
}

func TestAppendAllKeepsOverlaps(t *testing.T) {
	acc, src := combineFixtures()
	AppendAll(acc, src)

	if got := len(acc.Tags()); got != 4 {
		t.Errorf("tags after merge: got %d, want 4", got)
	}
	orgSpan, _ := acc.LineSpan(0)
	if got := len(acc.TagsIn(orgSpan)); got != 2 {
		t.Errorf("contested span tags: got %d, want 2", got)
	}
	if got := len(acc.Shapes()); got != 3 {
		t.Errorf("shapes after merge: got %d, want 3", got)
	}
}
