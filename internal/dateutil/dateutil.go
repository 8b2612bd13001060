// Package dateutil computes service dates and formats them for deck names.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDeckDateFormat renders "Sunday 05 01 2025" style deck names.
const DefaultDeckDateFormat = "DD MM YYYY"

// dateTokens maps user-friendly tokens to Go time format components,
// longest first for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"deck":     DefaultDeckDateFormat,
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text in brackets is literal:
// "[Week of] D MMMM" keeps "Week of". Other characters pass through.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has an
// unclosed bracket.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var out strings.Builder
	out.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			out.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := writeToken(&out, format[i:])
		if n == 0 {
			out.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return out.String(), nil
}

// writeToken writes the Go layout for the token at the start of s and
// returns its length, or 0 if s does not start with a token.
func writeToken(out *strings.Builder, s string) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			out.WriteString(t.goFmt)
			return len(t.token)
		}
	}
	return 0
}

// ResolveFormat returns the Go layout for a preset name or token format.
// An empty format selects DefaultDeckDateFormat.
func ResolveFormat(format string) (string, error) {
	if format == "" {
		format = DefaultDeckDateFormat
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	return ParseDateFormat(format)
}

// FormatDate formats t with a preset name or token format.
func FormatDate(t time.Time, format string) (string, error) {
	layout, err := ResolveFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// NextWeekday returns the first date strictly after now's calendar day that
// falls on day. On a Sunday, the next Sunday is seven days away.
// The result keeps now's location and is truncated to midnight.
func NextWeekday(now time.Time, day time.Weekday) time.Time {
	ahead := (int(day) - int(now.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	y, m, d := now.Date()
	return time.Date(y, m, d+ahead, 0, 0, 0, 0, now.Location())
}
