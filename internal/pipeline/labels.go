package pipeline

import (
	"regexp"
	"strings"
)

// reservedLabel matches a whole whitespace-delimited token that looks like a
// singer's section label: chorus, verse, bridge, v2, 1.
var reservedLabel = regexp.MustCompile(`(?i)^(?:chorus|verse|bridge|v\d+|[1-9]\.)$`)

// ScanReservedLabels returns the distinct section labels left in doc, in the
// order they first appear and with their original casing.
// The result is advisory: callers decide whether to continue.
func ScanReservedLabels(doc string) []string {
	var found []string
	seen := make(map[string]bool)

	for _, token := range strings.Fields(doc) {
		if seen[token] || !reservedLabel.MatchString(token) {
			continue
		}
		seen[token] = true
		found = append(found, token)
	}

	return found
}
