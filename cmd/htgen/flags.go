package main

import (
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-htgen/internal/clicheck"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// rootFlags override the site roots named in the config file.
type rootFlags struct {
	fragments string
	output    string
	aux       string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	roots    rootFlags
	noAssets bool
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
	roots  rootFlags
	yaml   bool
}

// clicheckFlags holds flags for the clicheck command.
type clicheckFlags struct {
	executable string
	version    string
	timeout    time.Duration
	quiet      bool
	verbose    bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	addVerbosityFlags(fs, &f.quiet, &f.verbose)
}

func addVerbosityFlags(fs *flag.FlagSet, quiet, verbose *bool) {
	fs.BoolVarP(quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(verbose, "verbose", "v", false, "show per-page progress")
}

// addRootFlags adds the root override flags to a FlagSet.
func addRootFlags(fs *flag.FlagSet, f *rootFlags) {
	fs.StringVar(&f.fragments, "fragments", "", "directory of page fragments")
	fs.StringVarP(&f.output, "output", "o", "", "directory receiving the site")
	fs.StringVar(&f.aux, "aux", "", "directory of changelogs, credits and TODO")
}

// newFlagSet creates a FlagSet that reports errors and usage on w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", w, printBuildUsage)
	addCommonFlags(fs, &f.common)
	addRootFlags(fs, &f.roots)
	fs.BoolVar(&f.noAssets, "no-assets", false, "skip mirroring static assets")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags.
func parseCheckFlags(args []string, w io.Writer) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newFlagSet("check", w, printCheckUsage)
	addCommonFlags(fs, &f.common)
	addRootFlags(fs, &f.roots)
	fs.BoolVar(&f.yaml, "yaml", false, "print the resolved config as YAML")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCLICheckFlags parses clicheck command flags. The executable may also
// be given as the single positional argument.
func parseCLICheckFlags(args []string, w io.Writer) (*clicheckFlags, error) {
	f := &clicheckFlags{}
	fs := newFlagSet("clicheck", w, printCLICheckUsage)
	fs.StringVarP(&f.executable, "executable", "e", "", "program to check")
	fs.StringVar(&f.version, "version", "", "version string --version must print")
	fs.DurationVarP(&f.timeout, "timeout", "t", clicheck.DefaultTimeout, "wait per invocation (e.g., 3s, 500ms)")
	addVerbosityFlags(fs, &f.quiet, &f.verbose)

	if err := parse(fs, args); err != nil {
		return nil, err
	}

	rest := fs.Args()
	if f.executable == "" && len(rest) == 1 {
		f.executable, rest = rest[0], nil
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}
	if f.executable == "" {
		return nil, fmt.Errorf("%w: --executable is required", ErrUsage)
	}
	if f.version == "" {
		return nil, fmt.Errorf("%w: --version is required", ErrUsage)
	}
	if f.timeout <= 0 {
		return nil, fmt.Errorf("%w: --timeout must be positive, got %s", ErrUsage, f.timeout)
	}
	return f, nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, w io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newFlagSet("init", w, printInitUsage)
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing config file")

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parse wraps flag errors with ErrUsage. flag.ErrHelp is returned unchanged.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
