// Package assets provides the slide template sets a deck is rendered with.
// Template sets can be loaded from embedded files or custom filesystem paths.
package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplateSet loads a built-in template set by name.
// Returns ErrTemplateSetNotFound if the template set does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplateSet(name string) (*TemplateSet, error) {
	return defaultLoader.LoadTemplateSet(name)
}

// ListTemplateSets returns the built-in template set names.
func ListTemplateSets() ([]string, error) {
	return defaultLoader.ListTemplateSets()
}
