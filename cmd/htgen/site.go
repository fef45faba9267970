package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	htgen "github.com/alnah/go-htgen"
	"github.com/alnah/go-htgen/internal/config"
	"github.com/alnah/go-htgen/internal/fileutil"
	"github.com/alnah/go-htgen/internal/hints"
)

// defaultConfigName is searched when neither --config nor HTGEN_CONFIG is set.
const defaultConfigName = "htgen"

// loadSiteConfig loads the site file and applies environment and flag
// overrides, in that order, then validates the result. Roots may come from
// any of the three sources.
func loadSiteConfig(flagConfig string, roots rootFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		name = defaultConfigName
	}

	cfg, err := config.Load(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configSearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(envCfg, cfg)
	applyRoots(cfg, roots.fragments, roots.output, roots.aux)

	if err := absRoots(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// absRoots makes override roots absolute against the working directory.
// Roots from the file are already absolute.
func absRoots(cfg *config.Config) error {
	for _, root := range []*string{&cfg.FragmentRoot, &cfg.OutputRoot, &cfg.AuxRoot} {
		if *root == "" || filepath.IsAbs(*root) {
			continue
		}
		abs, err := filepath.Abs(*root)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", *root, err)
		}
		*root = abs
	}
	return nil
}

// configSearchPaths lists where config.Load looks for a config name.
func configSearchPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return []string{name}
	}
	paths := []string{name + ".yaml", name + ".yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "go-htgen", name+".yaml"),
			filepath.Join(dir, "go-htgen", name+".yml"),
		)
	}
	return paths
}

// newRegistry builds the page registry declared by cfg.
func newRegistry(cfg *config.Config) (*htgen.Registry, error) {
	entries := make([]htgen.PageEntry, 0, len(cfg.Pages))
	for _, p := range cfg.Pages {
		entry := htgen.PageEntry{File: p.File}
		if p.Inject != nil {
			entry.Inject = &htgen.InjectEntry{
				Mode:   htgen.InjectMode(p.Inject.Mode),
				Source: p.Inject.Source,
				Target: p.Inject.Target,
			}
		}
		entries = append(entries, entry)
	}

	return htgen.NewRegistry(entries, htgen.Layout{
		FragmentRoot:    cfg.FragmentRoot,
		AuxRoot:         cfg.AuxRoot,
		FallbackTitle:   cfg.FallbackTitle,
		ChangelogPrefix: cfg.Changelog.Prefix,
		ChangelogDir:    cfg.Changelog.Dir,
		ChangelogExt:    cfg.Changelog.Ext,
	})
}

// newBuilder loads the skeleton named by cfg, preferring one under the
// fragment root, and returns a Builder writing through w.
func newBuilder(cfg *config.Config, w htgen.OutputWriter, logger *slog.Logger) (*htgen.Builder, error) {
	skeleton, err := htgen.LoadSkeleton(cfg.FragmentRoot, cfg.Skeleton)
	if err != nil {
		return nil, err
	}
	return htgen.NewBuilder(skeleton, w,
		htgen.WithLogger(logger),
		htgen.WithSlotID(cfg.SlotID),
		htgen.WithPlaceholder(cfg.TitlePlaceholder),
		htgen.WithContainerID(cfg.ContainerID),
	)
}
