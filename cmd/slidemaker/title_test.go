package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	slidemaker "github.com/alnah/go-slidemaker"
)

func TestRunTitle_Words(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv(&mockConverter{})

	if err := runTitle([]string{"how", "GREAT", "thou", "art", "[Key", "of", "G]"}, env); err != nil {
		t.Fatalf("runTitle() error: %v", err)
	}
	if got := stdout.String(); got != "TITLE (How Great Thou Art)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunTitle_File(t *testing.T) {
	t.Parallel()

	const text = "SERMON (Jo)\r\n\r\nblessed assurance - live\r\n\r\nLine A\r\n"

	t.Run("prints updated text", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, text)
		env, stdout, _ := newTestEnv(&mockConverter{})

		if err := runTitle([]string{"--file", path, "--line", "3"}, env); err != nil {
			t.Fatalf("runTitle() error: %v", err)
		}
		want := "SERMON (Jo)\r\n\r\nTITLE (Blessed Assurance)\r\n\r\nLine A\r\n"
		if stdout.String() != want {
			t.Errorf("output = %q, want %q", stdout.String(), want)
		}

		data, _ := os.ReadFile(path)
		if string(data) != text {
			t.Error("file changed without --write")
		}
	})

	t.Run("write rewrites file", func(t *testing.T) {
		t.Parallel()

		path := writeInput(t, text)
		env, stdout, _ := newTestEnv(&mockConverter{})

		if err := runTitle([]string{"-f", path, "-l", "3", "-w"}, env); err != nil {
			t.Fatalf("runTitle() error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "\r\nTITLE (Blessed Assurance)\r\n") {
			t.Errorf("file = %q", data)
		}
		if !strings.HasSuffix(stdout.String(), ":3: TITLE (Blessed Assurance)\n") {
			t.Errorf("output = %q", stdout.String())
		}
	})
}

func TestRunTitle_Errors(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "one\n\nthree")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no words", nil, slidemaker.ErrNoSelection},
		{"line without file", []string{"--line", "2"}, ErrInvalidFlags},
		{"words and file", []string{"--file", path, "--line", "1", "extra"}, ErrInvalidFlags},
		{"blank line", []string{"--file", path, "--line", "2"}, slidemaker.ErrNoSelection},
		{"line past end", []string{"--file", path, "--line", "9"}, slidemaker.ErrInvalidSelection},
		{"missing line flag", []string{"--file", path}, slidemaker.ErrInvalidSelection},
		{"missing file", []string{"--file", path + ".nope", "--line", "1"}, ErrReadInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv(&mockConverter{})
			if err := runTitle(tt.args, env); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLineSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		line    int
		want    slidemaker.Selection
		wantErr bool
	}{
		{"first line", "ab\ncd", 1, slidemaker.Selection{Start: 0, End: 2}, false},
		{"last line without newline", "ab\ncd", 2, slidemaker.Selection{Start: 3, End: 5}, false},
		{"crlf excluded", "ab\r\ncd\r\n", 1, slidemaker.Selection{Start: 0, End: 2}, false},
		{"empty trailing line", "ab\n", 2, slidemaker.Selection{Start: 3, End: 3}, false},
		{"zero", "ab", 0, slidemaker.Selection{}, true},
		{"past end", "ab\ncd", 3, slidemaker.Selection{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := lineSelection(tt.text, tt.line)
			if tt.wantErr {
				if !errors.Is(err, slidemaker.ErrInvalidSelection) {
					t.Errorf("error = %v, want ErrInvalidSelection", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("lineSelection(%q, %d) = %+v, want %+v", tt.text, tt.line, got, tt.want)
			}
		})
	}
}
