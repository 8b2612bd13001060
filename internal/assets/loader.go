package assets

// AssetLoader defines the contract for loading slide template sets.
type AssetLoader interface {
	// LoadTemplateSet loads a template set by name.
	// Returns ErrTemplateSetNotFound if the set doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplateSet(name string) (*TemplateSet, error)

	// ListTemplateSets returns the names of the available template sets, sorted.
	ListTemplateSets() ([]string, error)
}
