package htgen

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-htgen/internal/fileutil"
	"github.com/alnah/go-htgen/internal/hints"
)

// MirrorAssets copies each named file or directory from srcRoot to dstRoot.
// An existing destination entry is removed first and replaced wholesale.
// All sources are checked before anything is copied; absent ones are
// reported together with ErrMissingAsset.
func MirrorAssets(srcRoot, dstRoot string, names []string) error {
	var missing []string
	for _, name := range names {
		if err := validateAssetName(name); err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(srcRoot, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v in %s%s", ErrMissingAsset, missing, srcRoot,
			hints.ForMissingAsset(availableAssets(srcRoot, names)))
	}

	if err := os.MkdirAll(dstRoot, fileutil.DirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}

	for _, name := range names {
		if err := fileutil.CopyPath(filepath.Join(srcRoot, name), filepath.Join(dstRoot, name)); err != nil {
			return fmt.Errorf("mirroring %s: %w", name, err)
		}
	}
	return nil
}

// validateAssetName accepts relative paths that stay inside their root.
func validateAssetName(name string) error {
	clean := filepath.Clean(name)
	if name == "" || filepath.IsAbs(name) || clean == "." || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrInvalidAsset, name)
	}
	return nil
}

// availableAssets lists top-level entries of srcRoot that are not listed yet,
// to help spot a misspelled name.
func availableAssets(srcRoot string, listed []string) []string {
	entries, err := os.ReadDir(srcRoot)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !slices.Contains(listed, e.Name()) && filepath.Ext(e.Name()) != ".html" {
			out = append(out, e.Name())
		}
	}
	return out
}
