package pipeline

import (
	"regexp"
	"strings"
)

// paragraphBreak splits paragraphs on one or more blank lines.
var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// keywordMarker matches a whole single-line paragraph "KEYWORD (content)".
var keywordMarker = buildKeywordMarker()

func buildKeywordMarker() *regexp.Regexp {
	kws := Keywords()
	quoted := make([]string, len(kws))
	for i, kw := range kws {
		quoted[i] = regexp.QuoteMeta(string(kw))
	}
	return regexp.MustCompile(`^(` + strings.Join(quoted, "|") + `) \(([^\n]*)\)$`)
}

// Section is a run of paragraphs started by a keyword boundary (or by the
// start of the document). It is never empty.
type Section struct {
	Paragraphs []string
}

// KeywordMatch is the keyword and parenthesized content of a marker paragraph.
type KeywordMatch struct {
	Keyword Keyword
	Content string
}

// Blocks returns the blocks introduced by the keyword. CONTRIBUTION yields a
// content block followed by a content-less details block.
func (m KeywordMatch) Blocks() []Block {
	spec, ok := specForKeyword(m.Keyword)
	if !ok {
		return nil
	}

	blocks := []Block{{Kind: spec.kind, Content: m.Content}}
	for _, kind := range spec.followedBy {
		blocks = append(blocks, Block{Kind: kind})
	}
	return blocks
}

// SplitParagraphs splits doc on blank-line boundaries. Paragraphs may still
// contain single newlines. An empty or whitespace-only doc has no paragraphs.
func SplitParagraphs(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	return paragraphBreak.Split(doc, -1)
}

// IsBoundary reports whether paragraph starts a new section: it begins with
// a keyword immediately followed by ':' or a space.
func IsBoundary(paragraph string) bool {
	for _, kw := range Keywords() {
		if strings.HasPrefix(paragraph, string(kw)+":") || strings.HasPrefix(paragraph, string(kw)+" ") {
			return true
		}
	}
	return false
}

// MatchKeyword reports whether the whole paragraph is a keyword marker such as
// "SERMON (John Doe)". Multi-line paragraphs and paragraphs with text around
// the marker never match, even when IsBoundary is true for them.
func MatchKeyword(paragraph string) (KeywordMatch, bool) {
	m := keywordMarker.FindStringSubmatch(paragraph)
	if m == nil {
		return KeywordMatch{}, false
	}
	return KeywordMatch{Keyword: Keyword(m[1]), Content: strings.TrimSpace(m[2])}, true
}

// Segment splits doc into paragraphs and groups them into sections, opening a
// new section at every keyword boundary.
func Segment(doc string) []Section {
	var sections []Section
	var pending []string

	for _, p := range SplitParagraphs(doc) {
		if IsBoundary(p) && len(pending) > 0 {
			sections = append(sections, Section{Paragraphs: pending})
			pending = nil
		}
		pending = append(pending, p)
	}

	if len(pending) > 0 {
		sections = append(sections, Section{Paragraphs: pending})
	}

	return sections
}
