package slidemaker

// Converter tests inject a mock PDF backend through withPDFConverter, so no
// browser is started.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-slidemaker/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockPDFConverter struct {
	called    bool
	inputHTML string
	inputOpts *pdfOptions
	output    []byte
	err       error
	closed    bool
}

func (m *mockPDFConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	m.called = true
	m.inputHTML = htmlContent
	m.inputOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPDFConverter) Close() error {
	m.closed = true
	return nil
}

type mockDeckRenderer struct {
	deck pipeline.Deck
	err  error
}

func (m *mockDeckRenderer) RenderDeck(ctx context.Context, deck pipeline.Deck) (string, error) {
	m.deck = deck
	if m.err != nil {
		return "", m.err
	}
	return "<html><body>mock deck</body></html>", nil
}

func withPDFConverter(c pdfConverter) Option {
	return func(conv *Converter) {
		conv.pdfConverter = c
	}
}

func withDeckRenderer(r pipeline.DeckRenderer) Option {
	return func(conv *Converter) {
		conv.renderer = r
	}
}

func fixedID(id string) Option {
	return WithIDGenerator(func() string { return id })
}

// newTestConverter creates a Converter with a mock PDF backend.
func newTestConverter(t *testing.T, opts ...Option) (*Converter, *mockPDFConverter) {
	t.Helper()

	pdf := &mockPDFConverter{}
	conv, err := NewConverter(append([]Option{withPDFConverter(pdf), fixedID("deck-1")}, opts...)...)
	if err != nil {
		t.Fatalf("NewConverter() error: %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })
	return conv, pdf
}

// ---------------------------------------------------------------------------
// TestNewConverter - Template loading
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	t.Run("default template", func(t *testing.T) {
		t.Parallel()

		conv, _ := newTestConverter(t)
		if conv.TemplateName() != "default" {
			t.Errorf("TemplateName() = %q, want %q", conv.TemplateName(), "default")
		}
		if missing := conv.MissingLayouts(); len(missing) != 0 {
			t.Errorf("default template missing layouts %v", missing)
		}
	})

	t.Run("named built-in template", func(t *testing.T) {
		t.Parallel()

		conv, _ := newTestConverter(t, WithTemplate("plain"))
		if conv.TemplateName() != "plain" {
			t.Errorf("TemplateName() = %q, want %q", conv.TemplateName(), "plain")
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(withPDFConverter(&mockPDFConverter{}), WithTemplate("nope"))
		if !errors.Is(err, ErrTemplateSetNotFound) {
			t.Errorf("NewConverter() error = %v, want ErrTemplateSetNotFound", err)
		}
	})

	t.Run("invalid asset path", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter(withPDFConverter(&mockPDFConverter{}), WithAssetPath("/nonexistent/abc123"))
		if !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("NewConverter() error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("custom template missing layouts", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		dir := filepath.Join(base, "templates", "tiny")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		manifest := "layouts:\n  - name: Song Lyrics\n    placeholders: [10, 11]\n    html: '<p>{{.Ph 10}}</p>'\n"
		if err := os.WriteFile(filepath.Join(dir, "layouts.yaml"), []byte(manifest), 0o644); err != nil {
			t.Fatal(err)
		}

		conv, _ := newTestConverter(t, WithAssetPath(base), WithTemplate("tiny"))
		missing := conv.MissingLayouts()
		if len(missing) != len(Layouts())-1 {
			t.Errorf("MissingLayouts() = %v, want all but Song Lyrics", missing)
		}
	})
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) should panic")
		}
	}()
	WithTimeout(0)
}

// ---------------------------------------------------------------------------
// TestConverter_Convert - Pipeline
// ---------------------------------------------------------------------------

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	conv, pdf := newTestConverter(t)

	res, err := conv.Convert(context.Background(), Input{
		Text:    "SERMON (John Doe)\r\n\r\nLine A\r\nLine B\r\n\r\n\r\n\r\nLine C\r\n",
		Service: ServiceMidweek,
		Title:   "Midweek 11 01 2023",
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if res.ID != "deck-1" {
		t.Errorf("ID = %q, want %q", res.ID, "deck-1")
	}

	wantKinds := []BlockKind{BlockIntro, BlockSermon, BlockLyricPair, BlockLyricPair, BlockEnding}
	if len(res.Blocks) != len(wantKinds) {
		t.Fatalf("got %d blocks, want %d: %+v", len(res.Blocks), len(wantKinds), res.Blocks)
	}
	for i, k := range wantKinds {
		if res.Blocks[i].Kind != k {
			t.Errorf("block %d kind = %s, want %s", i, res.Blocks[i].Kind, k)
		}
	}
	if res.Blocks[0].Content != DefaultMidweekNotice {
		t.Errorf("intro = %q, want %q", res.Blocks[0].Content, DefaultMidweekNotice)
	}
	if res.Blocks[2].Top != "Line A\nLine B" || res.Blocks[2].Bottom != "Line C" {
		t.Errorf("first lyric pair = %+v", res.Blocks[2])
	}

	html := string(res.HTML)
	for _, want := range []string{`content="deck-1"`, "<title>Midweek 11 01 2023</title>", "John Doe", `data-layout="Message"`} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}

	if !pdf.called {
		t.Fatal("PDF converter not called")
	}
	if pdf.inputHTML != html {
		t.Error("PDF converter did not receive the rendered HTML")
	}
	if pdf.inputOpts == nil || pdf.inputOpts.Width != 13.333 || pdf.inputOpts.Height != 7.5 {
		t.Errorf("pdf options = %+v, want default template size", pdf.inputOpts)
	}
	if string(res.PDF) != "%PDF-1.4 mock" {
		t.Errorf("PDF = %q", res.PDF)
	}
}

func TestConverter_Convert_NoticeOverride(t *testing.T) {
	t.Parallel()

	conv, _ := newTestConverter(t)

	res, err := conv.Convert(context.Background(), Input{Text: "la la", Notice: "Starting at 10", HTMLOnly: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if res.Blocks[0].Content != "Starting at 10" {
		t.Errorf("intro = %q, want override", res.Blocks[0].Content)
	}
}

func TestConverter_Convert_HTMLOnly(t *testing.T) {
	t.Parallel()

	conv, pdf := newTestConverter(t)

	res, err := conv.Convert(context.Background(), Input{Text: "la la", HTMLOnly: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if pdf.called {
		t.Error("PDF converter called in HTML-only mode")
	}
	if res.PDF != nil {
		t.Error("PDF should be nil in HTML-only mode")
	}
	if len(res.HTML) == 0 {
		t.Error("HTML should be set")
	}
}

func TestConverter_Convert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		input   Input
		wantErr error
	}{
		{
			name:    "empty text",
			input:   Input{Text: ""},
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "whitespace text",
			input:   Input{Text: " \n\t\n "},
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "reserved labels",
			input:   Input{Text: "Chorus\nAmazing grace"},
			wantErr: ErrReservedLabelsPresent,
		},
		{
			name:    "renderer failure",
			opts:    []Option{withDeckRenderer(&mockDeckRenderer{err: ErrTemplateLayoutMissing})},
			input:   Input{Text: "la la"},
			wantErr: ErrTemplateLayoutMissing,
		},
		{
			name:    "pdf failure",
			opts:    []Option{withPDFConverter(&mockPDFConverter{err: ErrBrowserConnect})},
			input:   Input{Text: "la la"},
			wantErr: ErrBrowserConnect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, _ := newTestConverter(t, tt.opts...)
			_, err := conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConverter_Convert_ReservedLabels(t *testing.T) {
	t.Parallel()

	conv, pdf := newTestConverter(t)
	text := "Verse 1\nAmazing grace\n\nCHORUS\nHow sweet\n\n2. Through many"

	_, err := conv.Convert(context.Background(), Input{Text: text})
	var labelsErr *ReservedLabelsError
	if !errors.As(err, &labelsErr) {
		t.Fatalf("Convert() error = %v, want *ReservedLabelsError", err)
	}
	if got := strings.Join(labelsErr.Labels, ","); got != "Verse,CHORUS,2." {
		t.Errorf("Labels = %q, want %q", got, "Verse,CHORUS,2.")
	}
	if pdf.called {
		t.Error("nothing should be rendered before the labels are confirmed")
	}

	res, err := conv.Convert(context.Background(), Input{Text: text, AllowReservedLabels: true})
	if err != nil {
		t.Fatalf("Convert() with labels allowed error: %v", err)
	}
	if len(res.ReservedLabels) != 3 {
		t.Errorf("ReservedLabels = %v, want 3 labels", res.ReservedLabels)
	}
}

func TestConverter_Convert_MissingLayout(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := filepath.Join(base, "templates", "nolyrics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := "layouts:\n  - name: Initial Slide\n    placeholders: [10]\n    html: '{{.Ph 10}}'\n" +
		"  - name: Ending\n    html: end\n"
	if err := os.WriteFile(filepath.Join(dir, "layouts.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	conv, pdf := newTestConverter(t, WithAssetPath(base), WithTemplate("nolyrics"))

	if _, err := conv.Convert(context.Background(), Input{Text: "SERMON (x)", HTMLOnly: true}); !errors.Is(err, ErrTemplateLayoutMissing) {
		t.Errorf("Convert() error = %v, want ErrTemplateLayoutMissing for Message", err)
	}
	if pdf.called {
		t.Error("PDF converter should not run after a render failure")
	}
}

func TestConverter_Convert_ResolvesTemplateAssets(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	dir := filepath.Join(base, "templates", "logo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	var manifest strings.Builder
	manifest.WriteString("layouts:\n")
	for _, name := range Layouts() {
		manifest.WriteString("  - name: " + name + "\n    placeholders: [0, 10, 11]\n    html: '<img src=\"logo.png\"><p>{{.Ph 10}}</p>'\n")
	}
	if err := os.WriteFile(filepath.Join(dir, "layouts.yaml"), []byte(manifest.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	conv, _ := newTestConverter(t, WithAssetPath(base), WithTemplate("logo"))
	res, err := conv.Convert(context.Background(), Input{Text: "la la", HTMLOnly: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.Contains(string(res.HTML), "file://") || !strings.Contains(string(res.HTML), "logo.png") {
		t.Errorf("template image not resolved to file URL:\n%s", res.HTML)
	}
}

func TestConverter_Convert_PassesDeckToRenderer(t *testing.T) {
	t.Parallel()

	renderer := &mockDeckRenderer{}
	conv, _ := newTestConverter(t, withDeckRenderer(renderer))

	_, err := conv.Convert(context.Background(), Input{Text: "CONTRIBUTION (Elders)", Title: "T", HTMLOnly: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if renderer.deck.ID != "deck-1" || renderer.deck.Title != "T" {
		t.Errorf("deck = %+v", renderer.deck)
	}
	var layouts []string
	for _, s := range renderer.deck.Slides {
		layouts = append(layouts, s.Layout)
	}
	want := "Initial Slide,Contribution,Contribution Details,Ending"
	if got := strings.Join(layouts, ","); got != want {
		t.Errorf("layouts = %q, want %q", got, want)
	}
}

func TestConverter_Close(t *testing.T) {
	t.Parallel()

	pdf := &mockPDFConverter{}
	conv, err := NewConverter(withPDFConverter(pdf))
	if err != nil {
		t.Fatalf("NewConverter() error: %v", err)
	}
	if err := conv.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if !pdf.closed {
		t.Error("Close() did not close the PDF backend")
	}
}
