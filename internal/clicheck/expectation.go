package clicheck

import "time"

// DefaultTimeout bounds each invocation of the checked executable.
const DefaultTimeout = 3 * time.Second

// Defaults describing the Eureka editor's help banner.
const (
	DefaultLicenseLine    = "Eureka is free software, under the terms of the GNU General"
	DefaultUsageMarker    = "USAGE: "
	DefaultBlankLineAfter = "-warp"
)

// DefaultOptions is the closed set of long options the help text must list.
var DefaultOptions = []string{
	"--home", "--install", "--log", "--config", "--help", "--version", "--debug",
	"--quiet", "--file", "--merge", "--iwad", "--port", "--warp",
}

// Expectation describes what the executable must print.
// Empty fields disable the matching check; placeholder alignment is always
// checked.
type Expectation struct {
	LicenseLine    string        // Substring required in the help output
	UsageMarker    string        // Substring required in the help output
	Options        []string      // Exact set of long options, nil to skip
	BlankLineAfter string        // Lines containing this must be followed by a blank line
	Version        string        // Substring required in the version output
	Timeout        time.Duration // Per invocation, used by NewExecRunner
	HelpArgs       []string      // Defaults to --help
	VersionArgs    []string      // Defaults to --version
}

// DefaultExpectation returns the Eureka contract for the given version.
func DefaultExpectation(version string) Expectation {
	return Expectation{
		LicenseLine:    DefaultLicenseLine,
		UsageMarker:    DefaultUsageMarker,
		Options:        append([]string(nil), DefaultOptions...),
		BlankLineAfter: DefaultBlankLineAfter,
		Version:        version,
		Timeout:        DefaultTimeout,
	}
}

func (e Expectation) helpArgs() []string {
	if len(e.HelpArgs) == 0 {
		return []string{"--help"}
	}
	return e.HelpArgs
}

func (e Expectation) versionArgs() []string {
	if len(e.VersionArgs) == 0 {
		return []string{"--version"}
	}
	return e.VersionArgs
}
