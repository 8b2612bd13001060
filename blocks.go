package slidemaker

import "github.com/alnah/go-slidemaker/internal/pipeline"

// PrepareText normalizes line endings, trims the text and collapses runs of
// blank lines, the form every other step expects.
func PrepareText(text string) string {
	return pipeline.CleanLyrics(pipeline.PrepareDocument(text))
}

// ScanReservedLabels returns the distinct structural labels ("Chorus",
// "verse", "V2", "1.") found in text, in first-seen order.
func ScanReservedLabels(text string) []string {
	return pipeline.ScanReservedLabels(PrepareText(text))
}

// BuildBlocks returns the content blocks for text without rendering anything.
// The first block is the intro with notice, the last the ending.
func BuildBlocks(text, notice string) []Block {
	return pipeline.Build(PrepareText(text), notice)
}

// Slides maps blocks to their template layouts and placeholder texts.
func Slides(blocks []Block) []Slide {
	return pipeline.Slides(blocks)
}

// Layouts returns every layout name a deck may reference.
func Layouts() []string {
	return pipeline.Layouts()
}
