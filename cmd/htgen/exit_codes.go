package main

import (
	"errors"
	"os"

	htgen "github.com/alnah/go-htgen"
	"github.com/alnah/go-htgen/internal/assets"
	"github.com/alnah/go-htgen/internal/clicheck"
	"github.com/alnah/go-htgen/internal/config"
)

// Exit codes for the htgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess     = 0 // Site built, or checks passed
	ExitGeneral     = 1 // General/unexpected error
	ExitUsage       = 2 // Invalid flags, config, or skeleton
	ExitIO          = 3 // Missing fragment, changelog or asset; write failure
	ExitConformance = 4 // Checked executable does not conform
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conformance errors (exit 4)
	if errors.Is(err, clicheck.ErrMissingLicense) ||
		errors.Is(err, clicheck.ErrMissingUsage) ||
		errors.Is(err, clicheck.ErrOptionSet) ||
		errors.Is(err, clicheck.ErrMisaligned) ||
		errors.Is(err, clicheck.ErrMissingBlankLine) ||
		errors.Is(err, clicheck.ErrVersionMismatch) ||
		errors.Is(err, clicheck.ErrTimeout) ||
		errors.Is(err, clicheck.ErrExitStatus) {
		return ExitConformance
	}

	// Usage/config/skeleton errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInitExists) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldRequired) ||
		errors.Is(err, config.ErrInvalidInject) ||
		errors.Is(err, htgen.ErrSkeletonNotFound) ||
		errors.Is(err, htgen.ErrMissingSlot) ||
		errors.Is(err, htgen.ErrDuplicateSlot) ||
		errors.Is(err, htgen.ErrDuplicatePage) ||
		errors.Is(err, htgen.ErrInvalidPage) ||
		errors.Is(err, htgen.ErrInvalidAsset) {
		return ExitUsage
	}

	// Content and I/O errors (exit 3)
	if errors.Is(err, htgen.ErrMissingFragment) ||
		errors.Is(err, htgen.ErrMissingChangelog) ||
		errors.Is(err, htgen.ErrMissingSource) ||
		errors.Is(err, htgen.ErrMissingTarget) ||
		errors.Is(err, htgen.ErrInvalidText) ||
		errors.Is(err, htgen.ErrWriteFailure) ||
		errors.Is(err, htgen.ErrMissingAsset) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
