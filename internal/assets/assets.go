package assets

// DefaultTemplateName is the name of the built-in skeleton.
const DefaultTemplateName = "template"

// ExampleSiteName is the name of the bundled example site configuration.
const ExampleSiteName = "eureka"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a skeleton by name using the default embedded loader.
// The name should not include the .html extension or path components.
// Returns ErrTemplateNotFound if the skeleton does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// LoadSiteExample loads a bundled site configuration by name (without the
// .yaml extension).
// Returns ErrSiteNotFound if no such example exists.
func LoadSiteExample(name string) (string, error) {
	return defaultLoader.LoadSite(name)
}
