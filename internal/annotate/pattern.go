package annotate

import (
	"log/slog"
	"regexp"
	"strings"

	"cardvault/constants"
	"cardvault/internal/annotation"
	"cardvault/internal/task"
)

// Fixed category -> pattern mapping for the local detector. The patterns
// are conservative on purpose; the broad matching belongs to the remote
// NLP service and descriptor order decides who wins a contested span.
var (
	rePhone = regexp.MustCompile(`\+?\d[\d\s().\-]{6,}\d`)
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	reURL   = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+|\b[a-z0-9\-]+\.(?:com|org|net|io|co|dev|app)\b`)

	reStreet   = regexp.MustCompile(`(?i)\b\d+\s+\S+.*\b(?:street|st|avenue|ave|road|rd|boulevard|blvd|drive|dr|lane|ln|loop|way|suite|ste|floor|fl)\b.*`)
	reCityZip  = regexp.MustCompile(`\b[A-Z][A-Za-z .\-]+,\s*[A-Z]{2}\s+\d{5}(?:-\d{4})?\b`)
	reNonDigit = regexp.MustCompile(`\D`)
)

type extractor struct {
	category  constants.Category
	re        *regexp.Regexp
	normalize func(string) string
}

var extractors = []extractor{
	{constants.Email, reEmail, strings.ToLower},
	{constants.URL, reURL, strings.ToLower},
	{constants.PhoneNumber, rePhone, func(s string) string {
		return reNonDigit.ReplaceAllString(s, "")
	}},
	{constants.PostalAddress, reStreet, nil},
	{constants.PostalAddress, reCityZip, nil},
}

// PatternDetector is the local text-pattern annotation service: phone,
// email, URL and postal address via regular expression scanning against the
// flattened content. It never fails and never touches the network.
type PatternDetector struct {
	logger *slog.Logger
}

func NewPatternDetector(logger *slog.Logger) *PatternDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &PatternDetector{logger: logger}
}

func (d *PatternDetector) Annotate(req *Request, done Done) task.Handle {
	c := NewCall()
	go func() {
		resp := &Response{Text: d.scan(req)}
		c.Deliver(done, resp, nil)
	}()
	return c
}

func (d *PatternDetector) scan(req *Request) *annotation.Text {
	out := Blank(req)
	content := out.Content()

	total := 0
	for _, ex := range extractors {
		for _, loc := range ex.re.FindAllStringIndex(content, -1) {
			span := annotation.NewSpan(loc[0], loc[1])
			value := ""
			if ex.normalize != nil {
				value = ex.normalize(content[loc[0]:loc[1]])
			}
			// Email matches also satisfy the URL pattern's bare-domain
			// form; keep the more specific tag only.
			if ex.category == constants.URL && len(out.TagsIn(span)) > 0 {
				continue
			}
			out.AddTag(ex.category, value, span)
			total++
		}
	}

	d.logger.Debug("pattern.scan.done", "content_len", len(content), "tags", total)
	return out
}
