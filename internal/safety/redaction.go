package safety

import "regexp"

// User messages are personal by nature. Before any message fragment reaches
// a log line, contact details are masked; the full text is never logged.

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d[\d\s\-]{8,}\d)`)
	aadhRe  = regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`)
)

// RedactPII masks email addresses, phone numbers and ID-like digit runs.
func RedactPII(s string) string {
	s = emailRe.ReplaceAllString(s, "[email]")
	s = aadhRe.ReplaceAllString(s, "[id]")
	s = phoneRe.ReplaceAllString(s, "[phone]")
	return s
}
