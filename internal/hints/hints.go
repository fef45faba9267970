// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// IsInCI detects a CI runner from the environment variables the common
// providers set.
var IsInCI = func() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForMissingFragment returns a hint for a registered page without a source file.
func ForMissingFragment(fragmentRoot string) string {
	return format("add the fragment under " + fragmentRoot + " or remove the page from the site config")
}

// ForMissingChangelog returns a hint for a changelog page whose versioned
// document does not exist. In CI the page list is usually ahead of the
// release notes, so the hint says where the document is expected.
func ForMissingChangelog(expectedPath string) string {
	if IsInCI() {
		return format("commit " + expectedPath + " before publishing this release")
	}
	return format("create " + expectedPath + " or drop the page from the site config")
}

// ForMissingSlot returns a hint for a skeleton without its content slot.
func ForMissingSlot(slotID string) string {
	return format(`the skeleton needs exactly one element with id="` + slotID + `"`)
}

// ForTimeout returns a hint about raising the timeout for slow executables.
func ForTimeout() string {
	return format("for slow machines, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-htgen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	// Find a user config path (contains .config/go-htgen) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-htgen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMissingAsset returns a hint for a static asset listed but not present.
func ForMissingAsset(available []string) string {
	if len(available) == 0 {
		return format("remove the entry from assets or use --no-assets")
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
