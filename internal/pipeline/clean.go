package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Two or more blank lines (whitespace-only lines count as blank)
	excessBlankLines = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// PrepareDocument normalizes text as it comes out of an editor buffer:
// CRLF and CR become LF and surrounding whitespace is trimmed.
func PrepareDocument(raw string) string {
	return strings.TrimSpace(crlfOrCR.ReplaceAllString(raw, "\n"))
}

// CleanLyrics collapses every run of two or more blank lines into a single
// blank line. Applying it twice gives the same result as applying it once.
func CleanLyrics(doc string) string {
	return excessBlankLines.ReplaceAllString(doc, "\n\n")
}
