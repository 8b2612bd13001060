package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads template sets from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplateSet loads templates/{name}/layouts.yaml and the optional
// style.css from embedded assets.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dir := "templates/" + name
	if _, err := fs.Stat(templates, dir); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}

	data, err := templates.ReadFile(dir + "/" + ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, ManifestFile)
	}

	css, err := templates.ReadFile(dir + "/" + StyleFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return parseTemplateSet(name, data, string(css))
}

// ListTemplateSets returns the embedded set names.
func (e *EmbeddedLoader) ListTemplateSets() ([]string, error) {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
