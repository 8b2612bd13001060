package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	slidemaker "github.com/alnah/go-slidemaker"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock converter
// ---------------------------------------------------------------------------

// thursday is the fixed clock of test environments: the next Sunday is
// 08 01 2023 and the next Wednesday 11 01 2023.
var thursday = time.Date(2023, 1, 5, 10, 0, 0, 0, time.UTC)

type mockConverter struct {
	mu       sync.Mutex
	inputs   []slidemaker.Input
	err      error
	missing  []string
	closed   bool
	template string
}

func (m *mockConverter) Convert(ctx context.Context, input slidemaker.Input) (*slidemaker.ConvertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inputs = append(m.inputs, input)
	if m.err != nil {
		return nil, m.err
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, slidemaker.ErrEmptyDocument
	}

	res := &slidemaker.ConvertResult{
		ID:     "deck-test",
		Blocks: slidemaker.BuildBlocks(input.Text, input.Notice),
		HTML:   []byte("<html>" + input.Title + "</html>"),
	}
	if !input.HTMLOnly {
		res.PDF = []byte("%PDF-1.4 mock")
	}
	return res, nil
}

func (m *mockConverter) TemplateName() string {
	if m.template == "" {
		return "default"
	}
	return m.template
}

func (m *mockConverter) MissingLayouts() []string { return m.missing }

func (m *mockConverter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockConverter) calls() []slidemaker.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]slidemaker.Input(nil), m.inputs...)
}

// newTestEnv returns an environment with captured output, a fixed clock and
// conv behind the converter factory.
func newTestEnv(conv *mockConverter) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return thursday },
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		NewConverter: func(opts ...slidemaker.Option) (DeckConverter, error) {
			return conv, nil
		},
	}
	return env, &stdout, &stderr
}

// writeInput writes an order of service into a temp dir and returns its path.
func writeInput(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "service.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}
