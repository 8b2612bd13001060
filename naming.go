package slidemaker

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-slidemaker/internal/dateutil"
	"github.com/alnah/go-slidemaker/internal/fileutil"
)

// DefaultDeckName returns the name proposed for a deck: the service label
// and the date of the next service strictly after now, e.g.
// "Sunday 08 01 2023". An empty dateFormat selects "DD MM YYYY".
func DefaultDeckName(service ServiceType, now time.Time, dateFormat string) (string, error) {
	day := dateutil.NextWeekday(now, service.Weekday())
	date, err := dateutil.FormatDate(day, dateFormat)
	if err != nil {
		return "", err
	}
	return service.Label() + " " + date, nil
}

// DeckFileName sanitizes name and adds ext (without dot).
// Returns ErrMissingFileName for a blank name; a name made only of
// forbidden characters becomes "Presentation".
func DeckFileName(name, ext string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrMissingFileName
	}
	if err := fileutil.ValidateExtension(ext); err != nil {
		return "", fmt.Errorf("deck file extension: %w", err)
	}
	base := fileutil.SanitizeFileName(name)
	return base + "." + ext, nil
}
