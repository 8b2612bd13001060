package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// reservedLabelsMessage explains why structural labels left in the text are
// a problem. Labels are listed one per line.
func reservedLabelsMessage(labels []string) string {
	var b strings.Builder
	b.WriteString("Section labels found in the order of service:\n\n")
	for _, l := range labels {
		b.WriteString("  " + l + "\n")
	}
	b.WriteString("\n")
	b.WriteString("If these stand for repeated lines of a verse, chorus or bridge, write the lines out in full.\n")
	b.WriteString("If they are cues for the singers, remove them: they would be projected as lyrics.\n")
	b.WriteString("Slidemaker cannot tell a verse from a chorus or a bridge.\n")
	return b.String()
}

// confirmReservedLabels shows the labels on out and asks for a yes/no answer
// on in. Anything but y or yes declines, including end of input.
func confirmReservedLabels(in io.Reader, out io.Writer, labels []string) (bool, error) {
	fmt.Fprint(out, reservedLabelsMessage(labels))
	fmt.Fprint(out, "\nAre the lyrics correct? Proceed anyway? [y/N] ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
