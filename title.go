package slidemaker

import (
	"fmt"

	"github.com/alnah/go-slidemaker/internal/pipeline"
)

// FormatSongTitle turns a selected song name into a title marker:
// "Amazing Grace (Live) - Bridge" becomes "TITLE (Amazing Grace)".
// Returns ErrNoSelection for an empty or whitespace-only selection.
func FormatSongTitle(selection string) (string, error) {
	return pipeline.FormatSongTitle(selection)
}

// ConvertSelectionToTitle replaces the selected range of text with its
// title marker. It returns the new text and the selection covering the
// inserted marker, so an editor can keep it highlighted.
// Returns ErrInvalidSelection if the range is outside text or inverted, and
// ErrNoSelection if it covers only whitespace; text is returned unchanged
// with either error.
func ConvertSelectionToTitle(text string, sel Selection) (string, Selection, error) {
	if sel.Start < 0 || sel.End > len(text) || sel.Start > sel.End {
		return text, sel, fmt.Errorf("%w: [%d, %d) in %d bytes", ErrInvalidSelection, sel.Start, sel.End, len(text))
	}

	title, err := FormatSongTitle(text[sel.Start:sel.End])
	if err != nil {
		return text, sel, err
	}

	out := text[:sel.Start] + title + text[sel.End:]
	return out, Selection{Start: sel.Start, End: sel.Start + len(title)}, nil
}
