package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	htgen "github.com/alnah/go-htgen"
	"github.com/alnah/go-htgen/internal/config"
	"github.com/alnah/go-htgen/internal/fileutil"
	"github.com/alnah/go-htgen/internal/yamlutil"
)

// checkResult holds everything the check command found.
type checkResult struct {
	cfg        *config.Config
	pages      int
	changelogs int
	injected   int
	skeletonOK bool
	warnings   []string
	errs       []error
}

// runCheck validates the site without writing anything.
// Warnings (missing assets, absent output root) do not fail the check.
func runCheck(args []string, env *Environment) error {
	f, rest, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := loadSiteConfig(f.common.config, f.roots, env)
	if err != nil {
		return err
	}

	result := checkSite(cfg)

	if f.yaml {
		data, err := yamlutil.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, _ = env.Stdout.Write(data)
	} else if !f.common.quiet {
		printCheckResult(env.Stdout, result)
	}

	return errors.Join(result.errs...)
}

// checkSite runs every check against cfg and collects the findings.
func checkSite(cfg *config.Config) *checkResult {
	r := &checkResult{cfg: cfg}

	reg, err := newRegistry(cfg)
	if err != nil {
		r.errs = append(r.errs, err)
	} else {
		r.pages = reg.Len()
		for _, p := range reg.Pages() {
			switch {
			case p.Binding.Version != "":
				r.changelogs++
			case p.Binding.Kind != htgen.NoInjection:
				r.injected++
			}
		}
		if err := reg.Validate(); err != nil {
			r.errs = append(r.errs, err)
		}
	}

	if _, err := newBuilder(cfg, htgen.NewDirWriter(cfg.OutputRoot), nil); err != nil {
		r.errs = append(r.errs, err)
	} else {
		r.skeletonOK = true
	}

	for _, name := range cfg.Assets {
		if _, err := os.Stat(filepath.Join(cfg.FragmentRoot, name)); err != nil {
			r.warnings = append(r.warnings, fmt.Sprintf("asset %s not found under %s", name, cfg.FragmentRoot))
		}
	}

	switch {
	case fileutil.DirExists(cfg.OutputRoot):
	case fileutil.FileExists(cfg.OutputRoot):
		r.errs = append(r.errs, fmt.Errorf("output root %s is not a directory", cfg.OutputRoot))
	default:
		if _, err := os.Stat(cfg.OutputRoot); errors.Is(err, os.ErrNotExist) {
			r.warnings = append(r.warnings, fmt.Sprintf("output root %s will be created", cfg.OutputRoot))
		} else {
			r.errs = append(r.errs, fmt.Errorf("output root: %w", err))
		}
	}

	return r
}

// printCheckResult outputs human-readable check results.
func printCheckResult(w io.Writer, r *checkResult) {
	fmt.Fprintln(w, "htgen check")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Roots")
	fmt.Fprintf(w, "  [OK] Fragments: %s\n", r.cfg.FragmentRoot)
	fmt.Fprintf(w, "  [OK] Auxiliary: %s\n", r.cfg.AuxRoot)
	fmt.Fprintf(w, "  [OK] Output: %s\n", r.cfg.OutputRoot)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Skeleton")
	if r.skeletonOK {
		fmt.Fprintf(w, "  [OK] %s (slot %q, placeholder %q)\n", r.cfg.Skeleton, r.cfg.SlotID, r.cfg.TitlePlaceholder)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s\n", r.cfg.Skeleton)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Pages")
	fmt.Fprintf(w, "  [OK] %d registered (%d changelog, %d injected)\n", r.pages, r.changelogs, r.injected)
	fmt.Fprintln(w)

	if len(r.warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.errs) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.errs {
			fmt.Fprintf(w, "  [ERROR] %v\n", err)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
		return
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(w, "Status: Ready with warnings")
		return
	}
	fmt.Fprintln(w, "Status: Ready to build")
}
