package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"cardvault/constants"
	"cardvault/internal/entity"
)

func sampleContact() Contact {
	card := &entity.Card{
		ID:          uuid.New(),
		DisplayName: "scan-0001.jpg",
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	fields := []*entity.Field{
		{Category: string(constants.Person), RawText: "Steven Jobs"},
		{Category: string(constants.Organization), RawText: "Apple Inc."},
		{Category: string(constants.PhoneNumber), RawText: "Tel: 786-555-1212", Value: "7865551212"},
		{Category: string(constants.URL), RawText: "apple.com"},
		{Category: string(constants.PostalAddress), RawText: "1 Infinite Loop"},
		{Category: string(constants.PostalAddress), RawText: "Cupertino, CA 95014"},
	}
	return Contact{Card: card, Fields: fields}
}

func TestRenderVCard(t *testing.T) {
	got := renderVCard(sampleContact())

	if !strings.HasPrefix(got, "BEGIN:VCARD\r\nVERSION:3.0\r\n") {
		t.Fatalf("missing vCard preamble:\n%s", got)
	}
	if !strings.HasSuffix(got, "END:VCARD\r\n") {
		t.Fatalf("missing vCard terminator:\n%s", got)
	}

	want := []string{
		"FN:Steven Jobs",
		"ORG:Apple Inc.",
		"TEL;TYPE=WORK:7865551212",
		"URL:apple.com",
		"ADR;TYPE=WORK:;;1 Infinite Loop;;;;",
		"ADR;TYPE=WORK:;;Cupertino\\, CA 95014;;;;",
	}
	for _, line := range want {
		if !strings.Contains(got, line+"\r\n") {
			t.Errorf("missing line %q in:\n%s", line, got)
		}
	}
}

func TestRenderVCardFallsBackToDisplayName(t *testing.T) {
	c := sampleContact()
	c.Fields = nil

	got := renderVCard(c)
	if !strings.Contains(got, "FN:scan-0001.jpg\r\n") {
		t.Fatalf("expected display name fallback, got:\n%s", got)
	}
}

func TestContactPrefersNormalizedValue(t *testing.T) {
	c := sampleContact()

	if got := c.first(constants.PhoneNumber); got != "7865551212" {
		t.Fatalf("first(PhoneNumber) = %q, want normalized value", got)
	}
	if got := c.first(constants.Organization); got != "Apple Inc." {
		t.Fatalf("first(Organization) = %q, want raw text fallback", got)
	}
	if got := c.first(constants.Email); got != "" {
		t.Fatalf("first(Email) = %q, want empty for absent category", got)
	}
}

func TestEscapeVCard(t *testing.T) {
	in := "a,b;c\nd\\e"
	want := "a\\,b\\;c\\nd\\\\e"
	if got := escapeVCard(in); got != want {
		t.Fatalf("escapeVCard(%q) = %q, want %q", in, got, want)
	}
}
