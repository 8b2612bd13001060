package slidemaker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-slidemaker/internal/assets"
	"github.com/alnah/go-slidemaker/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyDocument         = errors.New("order of service text cannot be empty")
	ErrNoSelection           = pipeline.ErrNoSelection
	ErrInvalidSelection      = errors.New("selection out of range")
	ErrInvalidServiceType    = errors.New("invalid service type")
	ErrReservedLabelsPresent = errors.New("reserved labels present")
	ErrMissingFileName       = errors.New("file name cannot be empty")

	// Rendering errors.
	ErrTemplateLayoutMissing = pipeline.ErrTemplateLayoutMissing
	ErrLayoutParse           = pipeline.ErrLayoutParse
	ErrLayoutRender          = pipeline.ErrLayoutRender
	ErrPDFGeneration         = errors.New("PDF generation failed")
	ErrBrowserConnect        = errors.New("failed to connect to browser")
	ErrPageCreate            = errors.New("failed to create browser page")
	ErrPageLoad              = errors.New("failed to load page")

	// Asset loading errors.
	ErrTemplateSetNotFound   = assets.ErrTemplateSetNotFound
	ErrIncompleteTemplateSet = assets.ErrIncompleteTemplateSet
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)

// ReservedLabelsError reports structural labels such as "Chorus" or "V2"
// found in the text. They would otherwise be projected as lyrics.
type ReservedLabelsError struct {
	Labels []string
}

func (e *ReservedLabelsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrReservedLabelsPresent, strings.Join(e.Labels, ", "))
}

// Is reports whether target is ErrReservedLabelsPresent.
func (e *ReservedLabelsError) Is(target error) bool {
	return target == ErrReservedLabelsPresent
}
