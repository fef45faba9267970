package main

import (
	"io"
	"os"

	"github.com/alnah/go-htgen/internal/clicheck"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, environment lookup, and the executable runner.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	// Runner executes the checked program; nil selects a clicheck.ExecRunner
	// built from the command's timeout.
	Runner clicheck.Runner
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}
