package orderid

import (
	"regexp"
	"strings"
)

// Candidate tokens are contiguous runs of 5+ letters, digits, or hyphens,
// bounded by word boundaries. e.g. "ABC123", "TRK-9981", "00042-B".
var pattern = regexp.MustCompile(`\b[A-Za-z0-9\-]{5,}\b`)

// First returns the leftmost order-identifier token in text, or false when
// the text contains none. A candidate must contain at least one digit;
// otherwise every 5-letter word ("order", "please") would be mistaken for an
// identifier.
func First(text string) (string, bool) {
	for _, candidate := range pattern.FindAllString(text, -1) {
		if strings.ContainsAny(candidate, "0123456789") {
			return candidate, true
		}
	}
	return "", false
}
