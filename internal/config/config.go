// Package config loads the YAML site file that drives a build: where the
// fragments live, where output goes, and which pages are registered.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htgen/internal/fileutil"
	"github.com/alnah/go-htgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRequired   = errors.New("required field missing")
	ErrInvalidInject   = errors.New("invalid inject entry")
)

// Defaults for optional fields.
const (
	DefaultSkeleton         = "template"
	DefaultSlotID           = "wikitext"
	DefaultTitlePlaceholder = "$(TITLE)"
	DefaultFallbackTitle    = "MainPage"
	DefaultChangelogPrefix  = "Main_Changes"
	DefaultChangelogDir     = "changelogs"
	DefaultChangelogExt     = ".md"
	DefaultTODOTarget       = "todo"
)

// Inject modes accepted in a page entry.
const (
	ModeReplace = "replace"
	ModeAppend  = "append"
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxFileNameLength = 255  // NAME_MAX
	MaxIDLength       = 100  // HTML id attribute
	MaxTokenLength    = 100  // Placeholder token
	MaxTitleLength    = 100  // Fallback title
	MaxPages          = 10000
)

// Config holds all configuration for a site build.
type Config struct {
	FragmentRoot     string          `yaml:"fragmentRoot"`
	OutputRoot       string          `yaml:"outputRoot"`
	AuxRoot          string          `yaml:"auxRoot,omitempty"`
	Skeleton         string          `yaml:"skeleton,omitempty"`
	SlotID           string          `yaml:"slotID,omitempty"`
	TitlePlaceholder string          `yaml:"titlePlaceholder,omitempty"`
	FallbackTitle    string          `yaml:"fallbackTitle,omitempty"`
	ContainerID      string          `yaml:"containerID,omitempty"` // Append target when an entry names none
	Changelog        ChangelogConfig `yaml:"changelog"`
	Pages            []PageConfig    `yaml:"pages"`
	Assets           []string        `yaml:"assets,omitempty"`
}

// ChangelogConfig locates versioned changelog documents under the aux root.
type ChangelogConfig struct {
	Prefix string `yaml:"prefix,omitempty"` // Page key prefix, e.g. Main_Changes
	Dir    string `yaml:"dir,omitempty"`    // Directory under auxRoot
	Ext    string `yaml:"ext,omitempty"`    // Extension including the dot
}

// PageConfig registers one page.
type PageConfig struct {
	File   string        `yaml:"file"`
	Inject *InjectConfig `yaml:"inject,omitempty"`
}

// InjectConfig binds a page to an auxiliary document.
type InjectConfig struct {
	Mode   string `yaml:"mode"`             // replace or append
	Source string `yaml:"source"`           // Relative to auxRoot
	Target string `yaml:"target,omitempty"` // Element id; replace defaults to "todo"
}

// DefaultConfig returns a configuration with every optional field set to its
// default and no pages registered.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty optional fields with their defaults.
// An empty AuxRoot falls back to FragmentRoot.
func (c *Config) ApplyDefaults() {
	setDefault(&c.Skeleton, DefaultSkeleton)
	setDefault(&c.SlotID, DefaultSlotID)
	setDefault(&c.TitlePlaceholder, DefaultTitlePlaceholder)
	setDefault(&c.FallbackTitle, DefaultFallbackTitle)
	setDefault(&c.Changelog.Prefix, DefaultChangelogPrefix)
	setDefault(&c.Changelog.Dir, DefaultChangelogDir)
	setDefault(&c.Changelog.Ext, DefaultChangelogExt)
	setDefault(&c.AuxRoot, c.FragmentRoot)

	for i := range c.Pages {
		inj := c.Pages[i].Inject
		if inj != nil && inj.Mode == ModeReplace {
			setDefault(&inj.Target, DefaultTODOTarget)
		}
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// ResolveRoots makes relative roots absolute against baseDir.
func (c *Config) ResolveRoots(baseDir string) {
	for _, root := range []*string{&c.FragmentRoot, &c.OutputRoot, &c.AuxRoot} {
		if *root != "" && !filepath.IsAbs(*root) {
			*root = filepath.Join(baseDir, *root)
		}
	}
}

// Validate checks required fields, inject entries and field lengths.
// Load does not call it; callers validate after applying their overrides.
func (c *Config) Validate() error {
	if c.FragmentRoot == "" {
		return fmt.Errorf("%w: fragmentRoot", ErrFieldRequired)
	}
	if c.OutputRoot == "" {
		return fmt.Errorf("%w: outputRoot", ErrFieldRequired)
	}
	if len(c.Pages) == 0 {
		return fmt.Errorf("%w: pages (at least one page must be registered)", ErrFieldRequired)
	}
	if len(c.Pages) > MaxPages {
		return fmt.Errorf("pages: %d entries, max %d", len(c.Pages), MaxPages)
	}

	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"fragmentRoot", c.FragmentRoot, MaxPathLength},
		{"outputRoot", c.OutputRoot, MaxPathLength},
		{"auxRoot", c.AuxRoot, MaxPathLength},
		{"skeleton", c.Skeleton, MaxFileNameLength},
		{"slotID", c.SlotID, MaxIDLength},
		{"containerID", c.ContainerID, MaxIDLength},
		{"titlePlaceholder", c.TitlePlaceholder, MaxTokenLength},
		{"fallbackTitle", c.FallbackTitle, MaxTitleLength},
		{"changelog.prefix", c.Changelog.Prefix, MaxFileNameLength},
		{"changelog.dir", c.Changelog.Dir, MaxPathLength},
		{"changelog.ext", c.Changelog.Ext, MaxFileNameLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if strings.ContainsAny(c.Skeleton, `/\.`) {
		return fmt.Errorf("skeleton: %q must be a name without extension or path", c.Skeleton)
	}

	for i, p := range c.Pages {
		if err := validatePage(i, p); err != nil {
			return err
		}
	}

	for i, a := range c.Assets {
		if err := validateFieldLength(fmt.Sprintf("assets[%d]", i), a, MaxPathLength); err != nil {
			return err
		}
	}

	return nil
}

func validatePage(i int, p PageConfig) error {
	field := fmt.Sprintf("pages[%d]", i)
	if p.File == "" {
		return fmt.Errorf("%w: %s.file", ErrFieldRequired, field)
	}
	if err := validateFieldLength(field+".file", p.File, MaxFileNameLength); err != nil {
		return err
	}
	if p.Inject == nil {
		return nil
	}

	switch p.Inject.Mode {
	case ModeReplace, ModeAppend:
		// valid
	default:
		return fmt.Errorf("%w: %s.inject.mode: %q (must be %s or %s)",
			ErrInvalidInject, field, p.Inject.Mode, ModeReplace, ModeAppend)
	}
	if p.Inject.Source == "" {
		return fmt.Errorf("%w: %s.inject.source is required", ErrInvalidInject, field)
	}
	if err := validateFieldLength(field+".inject.source", p.Inject.Source, MaxPathLength); err != nil {
		return err
	}
	return validateFieldLength(field+".inject.target", p.Inject.Target, MaxIDLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Relative roots are resolved against the directory of the loaded file.
// Returns error if the file is not found (no silent fallback).
//
// The result is not validated: roots may still be supplied by the
// environment or flags, so callers run Validate once overrides are applied.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	baseDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("resolving config directory: %w", err)
	}
	cfg.ResolveRoots(baseDir)

	return cfg, nil
}

// Parse decodes a site file strictly and applies defaults. Roots are left as
// written and the result is not validated.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-htgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-htgen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
