package htgen

import (
	"errors"

	"github.com/alnah/go-htgen/internal/pipeline"
)

// Sentinel errors for build operations.
var (
	// Structural errors. Each aborts the build before anything is written.
	ErrMissingFragment  = errors.New("page fragment not found")
	ErrMissingChangelog = errors.New("changelog not found for version")
	ErrMissingSource    = errors.New("injection source not found")
	ErrMissingSlot      = pipeline.ErrMissingSlot
	ErrDuplicateSlot    = pipeline.ErrDuplicateSlot
	ErrMissingTarget    = pipeline.ErrMissingTarget
	ErrInvalidText      = pipeline.ErrInvalidText

	// ErrRenderDegraded marks a page whose auxiliary markup was published in
	// best-effort form. It is never returned by Build.
	ErrRenderDegraded = pipeline.ErrRenderDegraded

	// ErrWriteFailure is recorded per page; the build goes on with the rest.
	ErrWriteFailure = errors.New("writing page failed")

	// Registry validation errors.
	ErrDuplicatePage = errors.New("page registered twice")
	ErrInvalidPage   = errors.New("invalid page file name")

	// Asset errors.
	ErrSkeletonNotFound = errors.New("skeleton not found")
	ErrMissingAsset     = errors.New("static asset not found")
	ErrInvalidAsset     = errors.New("invalid asset name")
)
