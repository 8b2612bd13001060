package slidemaker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alnah/go-slidemaker/internal/assets"
	"github.com/alnah/go-slidemaker/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.DeckRenderer = (*pipeline.HTMLDeckRenderer)(nil)
	_ pdfConverter          = (*rodConverter)(nil)
	_ pdfRenderer           = (*rodRenderer)(nil)
)

// Converter turns order-of-service text into a slide deck.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
// A Converter is not safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	loader       assets.AssetLoader
	templateSet  *assets.TemplateSet
	renderer     pipeline.DeckRenderer
	pdfConverter pdfConverter
	newID        func() string
}

// NewConverter loads the template set and prepares the renderers.
// Chrome is not started until the first PDF is rendered.
// Returns ErrInvalidAssetPath if the asset path is unusable, or the template
// set loading error.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:      defaultTimeout,
			templateName: assets.DefaultTemplateSetName,
		},
		loader: assets.NewEmbeddedLoader(),
		newID:  uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.loader = resolver
	}

	ts, err := c.loader.LoadTemplateSet(c.cfg.templateName)
	if err != nil {
		return nil, fmt.Errorf("loading template set: %w", err)
	}
	c.templateSet = ts

	// Tests inject their own renderer.
	if c.renderer == nil {
		r, err := pipeline.NewHTMLDeckRenderer(toDeckTemplate(ts))
		if err != nil {
			return nil, fmt.Errorf("template set %q: %w", ts.Name, err)
		}
		c.renderer = r
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the pipeline: prepare and clean the text, check reserved
// labels, build blocks, render the HTML deck and print it to PDF.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	doc := pipeline.CleanLyrics(pipeline.PrepareDocument(input.Text))
	if doc == "" {
		return nil, ErrEmptyDocument
	}

	labels := pipeline.ScanReservedLabels(doc)
	if len(labels) > 0 && !input.AllowReservedLabels {
		return nil, &ReservedLabelsError{Labels: labels}
	}

	blocks := pipeline.Build(doc, input.notice())
	res := &ConvertResult{
		ID:             c.newID(),
		Blocks:         blocks,
		ReservedLabels: labels,
	}

	htmlContent, err := c.renderer.RenderDeck(ctx, pipeline.Deck{
		ID:     res.ID,
		Title:  input.Title,
		Slides: pipeline.Slides(blocks),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering deck: %w", err)
	}

	// Custom template sets may reference images next to layouts.yaml.
	if c.templateSet.Dir != "" {
		htmlContent, err = pipeline.ResolveAssetPaths(htmlContent, c.templateSet.Dir)
		if err != nil {
			return nil, fmt.Errorf("resolving template assets: %w", err)
		}
	}
	res.HTML = []byte(htmlContent)

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		Width:  c.templateSet.Width,
		Height: c.templateSet.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// TemplateName returns the name of the loaded template set.
func (c *Converter) TemplateName() string {
	return c.templateSet.Name
}

// MissingLayouts returns the layouts a deck may need that the loaded template
// set does not define. Convert fails on a slide using one of them.
func (c *Converter) MissingLayouts() []string {
	return c.templateSet.MissingLayouts(pipeline.Layouts())
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// toDeckTemplate converts a loaded template set to the renderer's form.
func toDeckTemplate(ts *assets.TemplateSet) pipeline.DeckTemplate {
	layouts := make([]pipeline.DeckLayout, len(ts.Layouts))
	for i, l := range ts.Layouts {
		layouts[i] = pipeline.DeckLayout{
			Name:         l.Name,
			Placeholders: l.Placeholders,
			HTML:         l.HTML,
		}
	}
	return pipeline.DeckTemplate{
		Width:   ts.Width,
		Height:  ts.Height,
		CSS:     ts.CSS,
		Layouts: layouts,
	}
}
