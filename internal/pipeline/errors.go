package pipeline

import "errors"

// Sentinel errors for pipeline operations.
var (
	// ErrNoSelection indicates title formatting was asked for an empty selection.
	ErrNoSelection = errors.New("no text selected")

	// ErrTemplateLayoutMissing indicates a slide references a layout the
	// template does not define. The deck cannot be rendered without it.
	ErrTemplateLayoutMissing = errors.New("template layout missing")

	// ErrLayoutParse indicates a layout fragment is not a valid HTML template.
	ErrLayoutParse = errors.New("layout template parsing failed")

	// ErrLayoutRender indicates a layout failed while rendering a slide.
	ErrLayoutRender = errors.New("layout template rendering failed")
)
