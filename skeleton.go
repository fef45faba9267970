package htgen

import (
	"errors"
	"fmt"

	"github.com/alnah/go-htgen/internal/assets"
)

// DefaultSkeletonName is the skeleton used when a site names none.
const DefaultSkeletonName = assets.DefaultTemplateName

// LoadSkeleton returns the source of the skeleton called name (without the
// .html extension). A file <dir>/<name>.html wins over the built-in skeleton
// of the same name; dir may be empty to use the built-in one only.
func LoadSkeleton(dir, name string) (string, error) {
	if name == "" {
		name = DefaultSkeletonName
	}

	resolver, err := assets.NewAssetResolver(dir)
	if err != nil {
		return "", fmt.Errorf("skeleton directory: %w", err)
	}

	source, err := resolver.LoadTemplate(name)
	if errors.Is(err, assets.ErrTemplateNotFound) {
		return "", fmt.Errorf("%w: %s.html", ErrSkeletonNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("loading skeleton: %w", err)
	}
	return source, nil
}
