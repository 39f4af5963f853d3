package export

import (
	"strings"

	"cardvault/constants"
)

// renderVCard emits a minimal vCard 3.0 record from a contact's extracted
// fields. Multi-valued categories (phones, emails) each get their own
// property line; the address lands in the street slot of ADR since the
// scan does not decompose it.
func renderVCard(c Contact) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")

	name := c.first(constants.Person)
	if name == "" {
		name = c.Card.DisplayName
	}
	b.WriteString("FN:" + escapeVCard(name) + "\r\n")

	if org := c.first(constants.Organization); org != "" {
		b.WriteString("ORG:" + escapeVCard(org) + "\r\n")
	}
	for _, phone := range c.all(constants.PhoneNumber) {
		b.WriteString("TEL;TYPE=WORK:" + escapeVCard(phone) + "\r\n")
	}
	for _, email := range c.all(constants.Email) {
		b.WriteString("EMAIL;TYPE=WORK:" + escapeVCard(email) + "\r\n")
	}
	for _, url := range c.all(constants.URL) {
		b.WriteString("URL:" + escapeVCard(url) + "\r\n")
	}
	for _, addr := range c.all(constants.PostalAddress) {
		b.WriteString("ADR;TYPE=WORK:;;" + escapeVCard(addr) + ";;;;\r\n")
	}
	for _, note := range c.all(constants.Note) {
		b.WriteString("NOTE:" + escapeVCard(note) + "\r\n")
	}

	b.WriteString("END:VCARD\r\n")
	return b.String()
}

func escapeVCard(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		"\n", "\\n",
		",", "\\,",
		";", "\\;",
	)
	return r.Replace(s)
}
