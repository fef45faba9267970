package main

import (
	"context"
	"fmt"
	"time"

	htgen "github.com/alnah/go-htgen"
	"github.com/alnah/go-htgen/internal/logfields"
)

// runBuild builds the site: pages first, then static assets.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())
	logger := newLogger(env.Stderr, f.common.quiet, f.common.verbose)

	cfg, err := loadSiteConfig(f.common.config, f.roots, env)
	if err != nil {
		return err
	}
	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	builder, err := newBuilder(cfg, htgen.NewDirWriter(cfg.OutputRoot), logger)
	if err != nil {
		return err
	}

	report, err := builder.Build(ctx, reg)
	if report == nil {
		return fmt.Errorf("building site: %w", err)
	}
	for _, p := range report.Degraded() {
		logger.Warn("page published with degraded markup", logfields.File(p.Page.File))
	}
	if err != nil {
		printBuildSummary(env, f, report)
		return fmt.Errorf("building site: %w", err)
	}

	if !f.noAssets && len(cfg.Assets) > 0 {
		start := time.Now()
		if err := htgen.MirrorAssets(cfg.FragmentRoot, cfg.OutputRoot, cfg.Assets); err != nil {
			return fmt.Errorf("mirroring assets: %w", err)
		}
		logger.Debug("assets mirrored",
			logfields.Count(len(cfg.Assets)),
			logfields.Path(cfg.OutputRoot),
			logfields.Duration(time.Since(start)),
		)
	}

	printBuildSummary(env, f, report)
	return nil
}

// printBuildSummary prints the page count line unless --quiet is set.
func printBuildSummary(env *Environment, f *buildFlags, r *htgen.Report) {
	if f.common.quiet {
		return
	}
	failed := len(r.Failed())
	if failed > 0 {
		fmt.Fprintf(env.Stdout, "Built %d/%d pages (%d failed)\n", r.Written(), len(r.Pages), failed)
		return
	}
	fmt.Fprintf(env.Stdout, "Built %d pages in %s\n", r.Written(), r.Duration.Round(time.Millisecond))
}
