package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// DeckLayout is one named slide layout of a template.
type DeckLayout struct {
	Name         string
	Placeholders []int  // placeholder indices the layout exposes
	HTML         string // html/template fragment, e.g. <p>{{.Ph 10}}</p>
}

// DeckTemplate describes how slides are laid out in the HTML deck.
type DeckTemplate struct {
	Width   float64 // slide width in inches
	Height  float64 // slide height in inches
	CSS     string
	Layouts []DeckLayout
}

// Deck is the ordered slide sequence handed to a renderer.
type Deck struct {
	ID     string
	Title  string
	Slides []Slide
}

// DeckRenderer defines the contract for rendering a deck to an HTML document.
type DeckRenderer interface {
	RenderDeck(ctx context.Context, deck Deck) (string, error)
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// parsedLayout is a DeckLayout with its template compiled.
type parsedLayout struct {
	tmpl         *template.Template
	placeholders map[int]bool
}

// HTMLDeckRenderer renders each slide with its named layout and wraps the
// slides in a single printable HTML document, one slide per page.
type HTMLDeckRenderer struct {
	layouts     map[string]*parsedLayout
	width       float64
	height      float64
	css         string
	cssInjector CSSInjector
	frame       *template.Template
}

// Slide frame. Each slide is a fixed-size page.
const deckFrame = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="deck-id" content="{{.ID}}">
<title>{{.Title}}</title>
</head>
<body>
{{range .Slides}}<section class="slide" data-layout="{{.Layout}}" data-index="{{.Index}}">
{{.Body}}
</section>
{{end}}</body>
</html>
`

// Default slide size: 16:9 widescreen, in inches.
const (
	DefaultSlideWidth  = 13.333
	DefaultSlideHeight = 7.5
)

// NewHTMLDeckRenderer compiles every layout of tmpl.
// Returns ErrLayoutParse if a layout is not a valid template.
func NewHTMLDeckRenderer(tmpl DeckTemplate) (*HTMLDeckRenderer, error) {
	frame, err := template.New("deck").Parse(deckFrame)
	if err != nil {
		return nil, fmt.Errorf("parsing deck frame: %w", err)
	}

	r := &HTMLDeckRenderer{
		layouts:     make(map[string]*parsedLayout, len(tmpl.Layouts)),
		width:       tmpl.Width,
		height:      tmpl.Height,
		css:         tmpl.CSS,
		cssInjector: &CSSInjection{},
		frame:       frame,
	}
	if r.width <= 0 {
		r.width = DefaultSlideWidth
	}
	if r.height <= 0 {
		r.height = DefaultSlideHeight
	}

	for _, l := range tmpl.Layouts {
		t, err := template.New(l.Name).Parse(l.HTML)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrLayoutParse, l.Name, err)
		}
		pl := &parsedLayout{tmpl: t, placeholders: make(map[int]bool, len(l.Placeholders))}
		for _, idx := range l.Placeholders {
			pl.placeholders[idx] = true
		}
		r.layouts[l.Name] = pl
	}

	return r, nil
}

// HasLayout reports whether the template defines the named layout.
func (r *HTMLDeckRenderer) HasLayout(name string) bool {
	_, ok := r.layouts[name]
	return ok
}

// LayoutNames returns the defined layout names, sorted.
func (r *HTMLDeckRenderer) LayoutNames() []string {
	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// slideData is what a layout template sees.
type slideData struct {
	Index int
	text  map[int]string
}

// Ph returns the text assigned to placeholder idx, or "" if none.
func (d slideData) Ph(idx int) string {
	return d.text[idx]
}

// renderedSlide is one slide inside the deck frame.
type renderedSlide struct {
	Index  int
	Layout string
	Body   template.HTML
}

// RenderDeck renders every slide in order.
// A slide whose layout is unknown aborts rendering with ErrTemplateLayoutMissing;
// no slide is ever skipped. Assignments to placeholders the layout does not
// expose are dropped.
func (r *HTMLDeckRenderer) RenderDeck(ctx context.Context, deck Deck) (string, error) {
	rendered := make([]renderedSlide, 0, len(deck.Slides))

	for i, slide := range deck.Slides {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		layout, ok := r.layouts[slide.Layout]
		if !ok {
			return "", fmt.Errorf("%w: %q (slide %d)", ErrTemplateLayoutMissing, slide.Layout, i+1)
		}

		data := slideData{Index: i + 1, text: make(map[int]string, len(slide.Placeholders))}
		for idx, text := range slide.Placeholders {
			if layout.placeholders[idx] {
				data.text[idx] = text
			}
		}

		var buf bytes.Buffer
		if err := layout.tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("%w: %q (slide %d): %v", ErrLayoutRender, slide.Layout, i+1, err)
		}

		rendered = append(rendered, renderedSlide{
			Index:  i + 1,
			Layout: slide.Layout,
			// #nosec G203 -- produced by html/template, placeholder text already escaped
			Body: template.HTML(buf.String()),
		})
	}

	var out bytes.Buffer
	err := r.frame.Execute(&out, struct {
		ID     string
		Title  string
		Slides []renderedSlide
	}{ID: deck.ID, Title: deck.Title, Slides: rendered})
	if err != nil {
		return "", fmt.Errorf("rendering deck frame: %w", err)
	}

	css := r.pageCSS() + r.css
	return r.cssInjector.InjectCSS(ctx, out.String(), css), nil
}

// pageCSS sizes every slide to one printed page.
func (r *HTMLDeckRenderer) pageCSS() string {
	return fmt.Sprintf(
		"@page { size: %.3fin %.3fin; margin: 0; }\n"+
			"html, body { margin: 0; padding: 0; }\n"+
			".slide { width: %.3fin; height: %.3fin; box-sizing: border-box; overflow: hidden; "+
			"page-break-after: always; break-after: page; position: relative; }\n"+
			".slide:last-child { page-break-after: auto; break-after: auto; }\n",
		r.width, r.height, r.width, r.height)
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Compile-time interface checks.
var (
	_ DeckRenderer = (*HTMLDeckRenderer)(nil)
	_ CSSInjector  = (*CSSInjection)(nil)
)
