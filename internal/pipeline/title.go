package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// bracketedSpan matches [..] and (..) spans with their leading whitespace.
var bracketedSpan = regexp.MustCompile(`\s*\[.*?\]|\s*\(.*?\)`)

// titleDashes are the hyphen-like characters that end a song title:
// hyphen-minus, en dash, em dash and minus sign.
const titleDashes = "-–—−"

// FormatSongTitle turns a selected fragment such as
// "Amazing Grace (Live) - Bridge" into the marker "TITLE (Amazing Grace)".
//
// Bracketed and parenthesized spans are dropped, everything from the first
// dash onwards is cut, and the rest is title-cased word by word.
// Returns ErrNoSelection if selection is empty or whitespace only.
func FormatSongTitle(selection string) (string, error) {
	if strings.TrimSpace(selection) == "" {
		return "", ErrNoSelection
	}

	title := bracketedSpan.ReplaceAllString(selection, "")
	if idx := strings.IndexAny(title, titleDashes); idx != -1 {
		title = title[:idx]
	}

	return fmt.Sprintf("%s (%s)", KeywordTitle, TitleCase(strings.TrimSpace(title))), nil
}

// TitleCase upper-cases the first letter of every whitespace-separated word
// and lower-cases the rest, joining words with single spaces.
// Acronyms and small words get no special treatment.
func TitleCase(s string) string {
	words := strings.Fields(s)
	lower := cases.Lower(language.Und)

	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToTitle(r)) + lower.String(word[size:])
	}

	return strings.Join(words, " ")
}
