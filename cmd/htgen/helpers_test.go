package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv is an Environment writing to buffers, with a fixed variable set.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Stdout: stdout,
			Stderr: stderr,
			Getenv: func(k string) string { return vars[k] },
			Environ: func() []string {
				out := make([]string, 0, len(vars))
				for k, v := range vars {
					out = append(out, k+"="+v)
				}
				return out
			},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

const testSiteConfig = `fragmentRoot: htgen
outputRoot: out
auxRoot: .
pages:
  - file: index.html
  - file: Main_About.html
  - file: Main_Changes2.0.1.html
assets:
  - eureka.css
  - shots
`

// rootlessSiteConfig leaves every root to the environment or flags.
const rootlessSiteConfig = `pages:
  - file: index.html
  - file: Main_About.html
  - file: Main_Changes2.0.1.html
`

// writeSite lays out a small site under a temp dir and returns the dir and
// the config path. files overrides or adds entries; an empty value deletes.
func writeSite(t *testing.T, files map[string]string) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	all := map[string]string{
		"site.yaml":                    testSiteConfig,
		"htgen/index.html":             `<div><p>Welcome to Eureka</p></div>`,
		"htgen/Main_About.html":        `<div><p>About the editor</p></div>`,
		"htgen/Main_Changes2.0.1.html": `<div><h2>Changes in 2.0.1</h2></div>`,
		"htgen/eureka.css":             "body { margin: 0 }",
		"htgen/shots/map.png":          "png",
		"changelogs/2.0.1.md":          "- Faster map loading\n",
	}
	for k, v := range files {
		all[k] = v
	}
	for rel, content := range all {
		if content == "" {
			continue
		}
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir, filepath.Join(dir, "site.yaml")
}

// readOutput returns the content of a file under dir, or "" if absent.
func readOutput(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		return ""
	}
	return string(data)
}

// fakeRunner returns canned output keyed by the joined arguments.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Run(_ context.Context, _ string, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[key]), nil
}

// conformingHelp returns help output satisfying the default expectation.
func conformingHelp() string {
	line := func(long, arg string) string {
		return "  " + padRight(long, 12) + padRight(arg, 11) + "description"
	}
	lines := []string{
		"Eureka is free software, under the terms of the GNU General",
		"",
		"USAGE: eureka [options...] [FILE...]",
		"",
		line("--home", "<dir>"),
		line("--install", "<dir>"),
		line("--log", "<file>"),
		line("--config", "<file>"),
		line("--help", ""),
		line("--version", ""),
		line("--debug", ""),
		line("--quiet", ""),
		line("--file", "<file>..."),
		line("--merge", "<file>..."),
		line("--iwad", "<file>"),
		line("--port", "<name>"),
		line("-W --warp", "<map>"),
		"",
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
