package slidemaker

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-slidemaker/internal/pipeline"
)

// ServiceType selects the intro notice and the default deck name.
type ServiceType int

// Service types.
const (
	ServiceSunday ServiceType = iota
	ServiceMidweek
)

// Default intro notices shown on the first slide.
const (
	DefaultSundayNotice  = "Our service begins shortly at 11 am"
	DefaultMidweekNotice = "Our service begins shortly at 7 pm"
)

// String returns the lowercase service name used in flags and config.
func (s ServiceType) String() string {
	switch s {
	case ServiceSunday:
		return "sunday"
	case ServiceMidweek:
		return "midweek"
	default:
		return fmt.Sprintf("ServiceType(%d)", int(s))
	}
}

// Label returns the capitalized name used in deck names.
func (s ServiceType) Label() string {
	switch s {
	case ServiceMidweek:
		return "Midweek"
	default:
		return "Sunday"
	}
}

// Weekday returns the day the service is held on.
func (s ServiceType) Weekday() time.Weekday {
	if s == ServiceMidweek {
		return time.Wednesday
	}
	return time.Sunday
}

// DefaultNotice returns the built-in intro notice for the service.
func (s ServiceType) DefaultNotice() string {
	if s == ServiceMidweek {
		return DefaultMidweekNotice
	}
	return DefaultSundayNotice
}

// ParseServiceType parses "sunday" or "midweek", case-insensitively.
// "wednesday" is accepted as an alias for midweek.
func ParseServiceType(s string) (ServiceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday":
		return ServiceSunday, nil
	case "midweek", "wednesday":
		return ServiceMidweek, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be sunday or midweek)", ErrInvalidServiceType, s)
	}
}

// Block is one content block of a deck.
type Block = pipeline.Block

// BlockKind identifies the type of a content block.
type BlockKind = pipeline.BlockKind

// Slide is a block resolved to a template layout and placeholder texts.
type Slide = pipeline.Slide

// Block kinds.
const (
	BlockIntro               = pipeline.BlockIntro
	BlockWelcome             = pipeline.BlockWelcome
	BlockCommunion           = pipeline.BlockCommunion
	BlockSermon              = pipeline.BlockSermon
	BlockClose               = pipeline.BlockClose
	BlockContribution        = pipeline.BlockContribution
	BlockContributionDetails = pipeline.BlockContributionDetails
	BlockTitle               = pipeline.BlockTitle
	BlockLyricPair           = pipeline.BlockLyricPair
	BlockEnding              = pipeline.BlockEnding
)

// Input contains the text and per-conversion options.
type Input struct {
	Text    string      // Order-of-service text (required)
	Service ServiceType // Selects the intro notice
	Notice  string      // Overrides the service's intro notice when set
	Title   string      // Document title stamped into the deck, optional

	// AllowReservedLabels skips the reserved-label check. Without it, Convert
	// returns a *ReservedLabelsError when labels such as "Chorus" are found.
	AllowReservedLabels bool

	// HTMLOnly skips PDF rendering.
	HTMLOnly bool
}

// notice returns the intro text for the input.
func (in Input) notice() string {
	if in.Notice != "" {
		return in.Notice
	}
	return in.Service.DefaultNotice()
}

// ConvertResult contains the outputs of one conversion.
type ConvertResult struct {
	ID             string   // Deck ID, unique per conversion
	Blocks         []Block  // Content blocks in deck order
	ReservedLabels []string // Labels found (only set when allowed)
	HTML           []byte   // Rendered HTML deck
	PDF            []byte   // PDF deck, nil in HTML-only mode
}

// Selection is a byte range [Start, End) in a text buffer.
type Selection struct {
	Start int
	End   int
}

// Empty reports whether the selection covers no bytes.
func (s Selection) Empty() bool {
	return s.End <= s.Start
}
