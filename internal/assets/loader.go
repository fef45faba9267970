package assets

// AssetLoader defines the contract for loading page skeletons.
type AssetLoader interface {
	// LoadTemplate loads a skeleton by name (without .html extension).
	// Returns ErrTemplateNotFound if the skeleton doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
