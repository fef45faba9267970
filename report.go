package htgen

import (
	"errors"
	"time"
)

// PageResult is the outcome of one page.
type PageResult struct {
	Page     Page
	Bytes    int   // Size of the composed document
	Degraded bool  // Auxiliary markup was published in best-effort form
	Err      error // Wraps ErrWriteFailure when the page could not be written
}

// Report lists one result per page, in registry order.
type Report struct {
	Pages    []PageResult
	Duration time.Duration
}

// Written returns the number of pages written successfully.
func (r *Report) Written() int {
	n := 0
	for _, p := range r.Pages {
		if p.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the results of pages that could not be written.
func (r *Report) Failed() []PageResult {
	var out []PageResult
	for _, p := range r.Pages {
		if p.Err != nil {
			out = append(out, p)
		}
	}
	return out
}

// Degraded returns the results of pages rendered in degraded mode.
func (r *Report) Degraded() []PageResult {
	var out []PageResult
	for _, p := range r.Pages {
		if p.Degraded {
			out = append(out, p)
		}
	}
	return out
}

// Err joins the errors of every failed page, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, p := range r.Pages {
		if p.Err != nil {
			errs = append(errs, p.Err)
		}
	}
	return errors.Join(errs...)
}
