package pipeline

// Layout names expected in slide templates.
const (
	LayoutInitialSlide        = "Initial Slide"
	LayoutWelcome             = "Welcome"
	LayoutCommunion           = "Communion"
	LayoutMessage             = "Message"
	LayoutClose               = "Close"
	LayoutContribution        = "Contribution"
	LayoutContributionDetails = "Contribution Details"
	LayoutSongTitle           = "Song Title"
	LayoutSongLyrics          = "Song Lyrics"
	LayoutEnding              = "Ending"
)

// Placeholder indices used by the layouts.
const (
	PlaceholderTitle  = 0
	PlaceholderBody   = 10
	PlaceholderBottom = 11

	// noPlaceholder marks layouts that take no text.
	noPlaceholder = -1
)

// Keyword is an uppercase section marker that introduces a non-lyric slide.
type Keyword string

// Recognized keywords. Matching is case-sensitive.
const (
	KeywordWelcome      Keyword = "WELCOME/PRAYER"
	KeywordCommunion    Keyword = "COMMUNION"
	KeywordSermon       Keyword = "SERMON"
	KeywordClose        Keyword = "CLOSE"
	KeywordContribution Keyword = "CONTRIBUTION"
	KeywordTitle        Keyword = "TITLE"
)

// blockSpec ties a block kind to its keyword (if any), its template layout
// and the placeholder receiving the block's content.
type blockSpec struct {
	kind        BlockKind
	keyword     Keyword     // empty for synthetic and lyric blocks
	layout      string      // template layout name
	placeholder int         // content placeholder, noPlaceholder if none
	followedBy  []BlockKind // content-less blocks emitted right after
}

// blockTable is the single source of truth for keyword dispatch and the
// layout/placeholder mapping. Keyword entries are listed in match order.
var blockTable = []blockSpec{
	{kind: BlockIntro, layout: LayoutInitialSlide, placeholder: PlaceholderBody},
	{kind: BlockWelcome, keyword: KeywordWelcome, layout: LayoutWelcome, placeholder: PlaceholderBody},
	{kind: BlockCommunion, keyword: KeywordCommunion, layout: LayoutCommunion, placeholder: PlaceholderBody},
	{kind: BlockSermon, keyword: KeywordSermon, layout: LayoutMessage, placeholder: PlaceholderBody},
	{kind: BlockClose, keyword: KeywordClose, layout: LayoutClose, placeholder: PlaceholderBody},
	{
		kind:        BlockContribution,
		keyword:     KeywordContribution,
		layout:      LayoutContribution,
		placeholder: PlaceholderBody,
		followedBy:  []BlockKind{BlockContributionDetails},
	},
	{kind: BlockContributionDetails, layout: LayoutContributionDetails, placeholder: noPlaceholder},
	{kind: BlockTitle, keyword: KeywordTitle, layout: LayoutSongTitle, placeholder: PlaceholderTitle},
	{kind: BlockLyricPair, layout: LayoutSongLyrics, placeholder: PlaceholderBody},
	{kind: BlockEnding, layout: LayoutEnding, placeholder: noPlaceholder},
}

// specFor returns the table entry for kind.
func specFor(kind BlockKind) (blockSpec, bool) {
	for _, spec := range blockTable {
		if spec.kind == kind {
			return spec, true
		}
	}
	return blockSpec{}, false
}

// specForKeyword returns the table entry introduced by kw.
func specForKeyword(kw Keyword) (blockSpec, bool) {
	for _, spec := range blockTable {
		if spec.keyword != "" && spec.keyword == kw {
			return spec, true
		}
	}
	return blockSpec{}, false
}

// Keywords returns the recognized keywords in match order.
func Keywords() []Keyword {
	var kws []Keyword
	for _, spec := range blockTable {
		if spec.keyword != "" {
			kws = append(kws, spec.keyword)
		}
	}
	return kws
}

// Layouts returns every layout name a deck may reference, in table order.
func Layouts() []string {
	names := make([]string, 0, len(blockTable))
	for _, spec := range blockTable {
		names = append(names, spec.layout)
	}
	return names
}
