package clicheck

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Sentinel errors, one per violated rule.
var (
	ErrMissingLicense   = errors.New("help output lacks the license line")
	ErrMissingUsage     = errors.New("help output lacks the usage marker")
	ErrOptionSet        = errors.New("help output option set differs")
	ErrMisaligned       = errors.New("help output placeholders are misaligned")
	ErrMissingBlankLine = errors.New("help output lacks a blank line")
	ErrVersionMismatch  = errors.New("version output lacks the expected version")
)

// longOption matches the first long option on a help line.
var longOption = regexp.MustCompile(`--[a-z_]+`)

// CheckHelp validates help output against exp and reports every violation,
// joined into one error. Returns nil when the output conforms.
func CheckHelp(output string, exp Expectation) error {
	var errs []error

	if exp.LicenseLine != "" && !strings.Contains(output, exp.LicenseLine) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrMissingLicense, exp.LicenseLine))
	}
	if exp.UsageMarker != "" && !strings.Contains(output, exp.UsageMarker) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrMissingUsage, exp.UsageMarker))
	}

	lines := strings.Split(output, "\n")

	if exp.Options != nil {
		if err := checkOptions(lines, exp.Options); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, checkAlignment(lines)...)
	if exp.BlankLineAfter != "" {
		errs = append(errs, checkBlankLines(lines, exp.BlankLineAfter)...)
	}

	return errors.Join(errs...)
}

// CheckVersion validates that output contains version.
func CheckVersion(output, version string) error {
	if !strings.Contains(output, version) {
		return fmt.Errorf("%w: want %q in %q", ErrVersionMismatch, version, strings.TrimSpace(output))
	}
	return nil
}

// checkOptions compares the first long option of each line with want.
func checkOptions(lines []string, want []string) error {
	found := make(map[string]bool)
	for _, line := range lines {
		if m := longOption.FindString(line); m != "" {
			found[m] = true
		}
	}

	expected := make(map[string]bool, len(want))
	var missing []string
	for _, opt := range want {
		expected[opt] = true
		if !found[opt] {
			missing = append(missing, opt)
		}
	}

	var unexpected []string
	for opt := range found {
		if !expected[opt] {
			unexpected = append(unexpected, opt)
		}
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}
	slices.Sort(missing)
	slices.Sort(unexpected)
	return fmt.Errorf("%w: missing [%s], unexpected [%s]",
		ErrOptionSet, strings.Join(missing, " "), strings.Join(unexpected, " "))
}

// checkAlignment requires every line holding a '<' to have its first '<' at
// the column of the first such line.
func checkAlignment(lines []string) []error {
	var errs []error
	want, wantLine := -1, 0
	for i, line := range lines {
		idx := strings.IndexByte(line, '<')
		if idx < 0 {
			continue
		}
		col := utf8.RuneCountInString(line[:idx])
		if want < 0 {
			want, wantLine = col, i+1
			continue
		}
		if col != want {
			errs = append(errs, fmt.Errorf("%w: line %d has '<' at column %d, line %d at column %d",
				ErrMisaligned, i+1, col, wantLine, want))
		}
	}
	return errs
}

// checkBlankLines requires the line after each line containing marker to be
// blank. A marker on the last line is accepted.
func checkBlankLines(lines []string, marker string) []error {
	var errs []error
	for i, line := range lines {
		if !strings.Contains(line, marker) || i+1 >= len(lines) {
			continue
		}
		if next := lines[i+1]; strings.TrimSpace(next) != "" {
			errs = append(errs, fmt.Errorf("%w: line %d after %q is %q",
				ErrMissingBlankLine, i+2, marker, next))
		}
	}
	return errs
}

// Check runs the executable for help and version and validates both.
// Execution failures are returned as is; conformance violations of both
// checks are joined.
func Check(ctx context.Context, runner Runner, exe string, exp Expectation) error {
	help, err := runner.Run(ctx, exe, exp.helpArgs()...)
	if err != nil {
		return fmt.Errorf("running %s: %w", strings.Join(exp.helpArgs(), " "), err)
	}

	var errs []error
	if err := CheckHelp(string(help), exp); err != nil {
		errs = append(errs, err)
	}

	if exp.Version != "" {
		out, err := runner.Run(ctx, exe, exp.versionArgs()...)
		if err != nil {
			return errors.Join(append(errs, fmt.Errorf("running %s: %w", strings.Join(exp.versionArgs(), " "), err))...)
		}
		if err := CheckVersion(string(out), exp.Version); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
