package main

import (
	"fmt"
	"os"
	"strings"

	slidemaker "github.com/alnah/go-slidemaker"
)

// runTitle formats a song name as a TITLE marker. With --file and --line it
// replaces that line of the file, printing the result or rewriting the file
// with --write.
func runTitle(args []string, env *Environment) error {
	flags, positional, err := parseTitleFlags(args)
	if err != nil {
		return err
	}

	if flags.file == "" {
		if flags.write || flags.line != 0 {
			return fmt.Errorf("%w: --line and --write need --file", ErrInvalidFlags)
		}
		title, err := slidemaker.FormatSongTitle(strings.Join(positional, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, title)
		return nil
	}

	if len(positional) > 0 {
		return fmt.Errorf("%w: words and --file are exclusive", ErrInvalidFlags)
	}

	text, err := readInput(flags.file, env.Stdin)
	if err != nil {
		return err
	}

	sel, err := lineSelection(text, flags.line)
	if err != nil {
		return err
	}

	updated, marker, err := slidemaker.ConvertSelectionToTitle(text, sel)
	if err != nil {
		return fmt.Errorf("line %d: %w", flags.line, err)
	}

	if !flags.write {
		fmt.Fprint(env.Stdout, updated)
		return nil
	}

	info, err := os.Stat(flags.file)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.WriteFile(flags.file, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stdout, "%s:%d: %s\n", flags.file, flags.line, updated[marker.Start:marker.End])
	return nil
}

// lineSelection returns the byte range of the 1-based line n of text,
// excluding the line break and a trailing carriage return.
func lineSelection(text string, n int) (slidemaker.Selection, error) {
	if n < 1 {
		return slidemaker.Selection{}, fmt.Errorf("%w: line %d (lines start at 1)", slidemaker.ErrInvalidSelection, n)
	}

	start := 0
	for line := 1; line < n; line++ {
		i := strings.IndexByte(text[start:], '\n')
		if i == -1 {
			return slidemaker.Selection{}, fmt.Errorf("%w: line %d (text has %d lines)", slidemaker.ErrInvalidSelection, n, line)
		}
		start += i + 1
	}

	end := len(text)
	if i := strings.IndexByte(text[start:], '\n'); i != -1 {
		end = start + i
	}
	if end > start && text[end-1] == '\r' {
		end--
	}

	return slidemaker.Selection{Start: start, End: end}, nil
}
