package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-htgen/internal/clicheck"
	"github.com/alnah/go-htgen/internal/hints"
)

// runCLICheck runs the executable's --help and --version and checks the
// output against the default expectation.
func runCLICheck(ctx context.Context, args []string, env *Environment) error {
	f, err := parseCLICheckFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, f.quiet, f.verbose)
	exp := clicheck.DefaultExpectation(f.version)
	exp.Timeout = f.timeout

	runner := env.Runner
	if runner == nil {
		runner = clicheck.NewExecRunner(exp.Timeout, logger)
	}

	if err := clicheck.Check(ctx, runner, f.executable, exp); err != nil {
		if errors.Is(err, clicheck.ErrTimeout) {
			return fmt.Errorf("%s: %w%s", f.executable, err, hints.ForTimeout())
		}
		return fmt.Errorf("%s: %w", f.executable, err)
	}

	if !f.quiet {
		fmt.Fprintf(env.Stdout, "%s: help and version output conform\n", f.executable)
	}
	return nil
}
