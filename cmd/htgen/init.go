package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-htgen/internal/assets"
	"github.com/alnah/go-htgen/internal/fileutil"
)

// ErrInitExists is returned when init would overwrite a config file.
var ErrInitExists = errors.New("config file already exists")

// runInit writes the example site config into the target directory.
func runInit(args []string, env *Environment) error {
	f, rest, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest[1:])
	}

	dir := "."
	if len(rest) == 1 {
		dir = rest[0]
	}
	path := filepath.Join(dir, defaultConfigName+".yaml")

	if fileutil.FileExists(path) && !f.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrInitExists, path)
	}

	example, err := assets.LoadSiteExample(assets.ExampleSiteName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, fileutil.DirPermissions); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte(example), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
	return nil
}
