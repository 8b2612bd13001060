package assets

import (
	"fmt"
	"strings"

	"github.com/alnah/go-slidemaker/internal/yamlutil"
)

// Template set file names.
const (
	ManifestFile = "layouts.yaml"
	StyleFile    = "style.css"
)

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// Slide size bounds, in inches.
const (
	minSlideSide = 1.0
	maxSlideSide = 100.0
)

// Layout is one named slide layout of a template set.
type Layout struct {
	Name         string `yaml:"name"`
	Placeholders []int  `yaml:"placeholders"`
	HTML         string `yaml:"html"`
}

// TemplateSet holds the named layouts a deck is rendered with.
type TemplateSet struct {
	Name    string   // Identifier of the set
	Dir     string   // Directory on disk, empty for embedded sets
	Width   float64  // Slide width in inches, 0 for the renderer default
	Height  float64  // Slide height in inches, 0 for the renderer default
	CSS     string   // Content of style.css, may be empty
	Layouts []Layout // Layouts in manifest order
}

// manifest is the layouts.yaml document.
type manifest struct {
	Slide struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"slide"`
	Layouts []Layout `yaml:"layouts"`
}

// parseTemplateSet decodes a layouts.yaml manifest and validates it.
func parseTemplateSet(name string, data []byte, css string) (*TemplateSet, error) {
	var m manifest
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidManifest, name, err)
	}

	if len(m.Layouts) == 0 {
		return nil, fmt.Errorf("%w: %q declares no layouts", ErrIncompleteTemplateSet, name)
	}

	if err := validateSlideSide("width", m.Slide.Width); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidManifest, name, err)
	}
	if err := validateSlideSide("height", m.Slide.Height); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidManifest, name, err)
	}

	seen := make(map[string]bool, len(m.Layouts))
	for i, l := range m.Layouts {
		if strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("%w: %q: layout %d has no name", ErrInvalidManifest, name, i+1)
		}
		if seen[l.Name] {
			return nil, fmt.Errorf("%w: %q: duplicate layout %q", ErrInvalidManifest, name, l.Name)
		}
		seen[l.Name] = true
		for _, idx := range l.Placeholders {
			if idx < 0 {
				return nil, fmt.Errorf("%w: %q: layout %q has negative placeholder %d",
					ErrInvalidManifest, name, l.Name, idx)
			}
		}
	}

	return &TemplateSet{
		Name:    name,
		Width:   m.Slide.Width,
		Height:  m.Slide.Height,
		CSS:     css,
		Layouts: m.Layouts,
	}, nil
}

// validateSlideSide accepts 0 (renderer default) or a value within bounds.
func validateSlideSide(field string, v float64) error {
	if v == 0 {
		return nil
	}
	if v < minSlideSide || v > maxSlideSide {
		return fmt.Errorf("slide %s %.3f out of range [%.0f, %.0f]", field, v, minSlideSide, maxSlideSide)
	}
	return nil
}

// HasLayout reports whether the set defines the named layout.
func (ts *TemplateSet) HasLayout(name string) bool {
	for _, l := range ts.Layouts {
		if l.Name == name {
			return true
		}
	}
	return false
}

// MissingLayouts returns the names in required that the set does not define,
// in the order given.
func (ts *TemplateSet) MissingLayouts(required []string) []string {
	var missing []string
	for _, name := range required {
		if !ts.HasLayout(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
