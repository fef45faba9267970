package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-htgen/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without editing the site file.
type envConfig struct {
	ConfigPath   string // HTGEN_CONFIG: config file name or path
	FragmentRoot string // HTGEN_FRAGMENT_ROOT: directory of page fragments
	OutputRoot   string // HTGEN_OUTPUT_ROOT: directory receiving the site
	AuxRoot      string // HTGEN_AUX_ROOT: directory of changelogs, credits, TODO
}

// knownEnvVars lists valid HTGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTGEN_CONFIG":        true,
	"HTGEN_FRAGMENT_ROOT": true,
	"HTGEN_OUTPUT_ROOT":   true,
	"HTGEN_AUX_ROOT":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath:   getenv("HTGEN_CONFIG"),
		FragmentRoot: getenv("HTGEN_FRAGMENT_ROOT"),
		OutputRoot:   getenv("HTGEN_OUTPUT_ROOT"),
		AuxRoot:      getenv("HTGEN_AUX_ROOT"),
	}
}

// warnUnknownEnvVars prints a warning for unrecognized HTGEN_* variables.
// Helps catch typos like HTGEN_OUTPUT instead of HTGEN_OUTPUT_ROOT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, "HTGEN_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides the roots of cfg with the values set in env.
// CLI flags are applied afterwards, so: CLI flags > env vars > config file.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	applyRoots(cfg, env.FragmentRoot, env.OutputRoot, env.AuxRoot)
}

// applyRoots sets each non-empty root on cfg. When the aux root followed the
// fragment root and is not set explicitly, it keeps following it.
func applyRoots(cfg *config.Config, fragments, output, aux string) {
	auxFollows := cfg.AuxRoot == cfg.FragmentRoot
	if fragments != "" {
		cfg.FragmentRoot = fragments
		if auxFollows && aux == "" {
			cfg.AuxRoot = fragments
		}
	}
	if output != "" {
		cfg.OutputRoot = output
	}
	if aux != "" {
		cfg.AuxRoot = aux
	}
}
