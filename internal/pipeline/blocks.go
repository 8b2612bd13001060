package pipeline

import "fmt"

// BlockKind identifies the type of a content block.
type BlockKind int

// Block kinds, in no particular deck order.
const (
	BlockIntro BlockKind = iota
	BlockWelcome
	BlockCommunion
	BlockSermon
	BlockClose
	BlockContribution
	BlockContributionDetails
	BlockTitle
	BlockLyricPair
	BlockEnding
)

var blockKindNames = map[BlockKind]string{
	BlockIntro:               "intro",
	BlockWelcome:             "welcome",
	BlockCommunion:           "communion",
	BlockSermon:              "sermon",
	BlockClose:               "close",
	BlockContribution:        "contribution",
	BlockContributionDetails: "contribution-details",
	BlockTitle:               "title",
	BlockLyricPair:           "lyrics",
	BlockEnding:              "ending",
}

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	if name, ok := blockKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// Block is one renderer-ready unit of a deck.
//
// Content holds the keyword content or the intro notice. Top and Bottom are
// only used by BlockLyricPair; Bottom is empty for the last pair of a section.
type Block struct {
	Kind    BlockKind
	Content string
	Top     string
	Bottom  string
}

// Slide is a block resolved against the template compatibility table.
type Slide struct {
	Layout       string
	Placeholders map[int]string
}

// Slide maps the block to its layout name and placeholder assignments.
func (b Block) Slide() Slide {
	spec, ok := specFor(b.Kind)
	if !ok {
		return Slide{Placeholders: map[int]string{}}
	}

	slide := Slide{Layout: spec.layout, Placeholders: map[int]string{}}
	switch {
	case b.Kind == BlockLyricPair:
		slide.Placeholders[PlaceholderBody] = b.Top
		slide.Placeholders[PlaceholderBottom] = b.Bottom
	case spec.placeholder != noPlaceholder:
		slide.Placeholders[spec.placeholder] = b.Content
	}
	return slide
}

// Slides maps every block to its slide.
func Slides(blocks []Block) []Slide {
	slides := make([]Slide, len(blocks))
	for i, b := range blocks {
		slides[i] = b.Slide()
	}
	return slides
}

// Build runs the segmentation engine on a cleaned document.
func Build(doc, intro string) []Block {
	return BuildBlocks(Segment(doc), intro)
}

// BuildBlocks turns sections into the final block sequence, framed by the
// intro block and the ending block.
func BuildBlocks(sections []Section, intro string) []Block {
	blocks := []Block{{Kind: BlockIntro, Content: intro}}
	for _, section := range sections {
		blocks = append(blocks, section.Blocks()...)
	}
	return append(blocks, Block{Kind: BlockEnding})
}

// Blocks returns the keyword blocks (if the first paragraph is a keyword
// marker) followed by the lyric pairs of the section.
// When the first paragraph does not match, it is paired as lyrics too.
func (s Section) Blocks() []Block {
	if len(s.Paragraphs) == 0 {
		return nil
	}

	var blocks []Block
	lyrics := s.Paragraphs
	if m, ok := MatchKeyword(s.Paragraphs[0]); ok {
		blocks = append(blocks, m.Blocks()...)
		lyrics = s.Paragraphs[1:]
	}

	return append(blocks, PairLyrics(lyrics)...)
}

// PairLyrics pairs paragraphs with a sliding window of step one:
// (P1,P2), (P2,P3), ..., (Pn,""). Every paragraph except the first shows up
// twice, once at the bottom of a slide and once at the top of the next.
// n paragraphs give exactly n blocks.
func PairLyrics(paragraphs []string) []Block {
	blocks := make([]Block, 0, len(paragraphs))
	for i, top := range paragraphs {
		var bottom string
		if i+1 < len(paragraphs) {
			bottom = paragraphs[i+1]
		}
		blocks = append(blocks, Block{Kind: BlockLyricPair, Top: top, Bottom: bottom})
	}
	return blocks
}
