// Package pipeline implements the page composition pipeline for the site build.
//
// This package handles the document-level stages of a build:
//   - Lightweight markup preprocessing (line endings, byte order mark)
//   - Markup to HTML conversion via Goldmark, with highlighted fenced code
//   - Verbatim text replacement inside a page fragment
//   - Appending rendered markup to a page fragment's content container
//   - Skeleton composition: slot replacement and title substitution
//
// File access, page registration, and output writing are handled by the root
// htgen package. This separation keeps the pipeline free of I/O: every
// function here is a pure transformation of strings, which is what makes the
// build reproducible byte for byte.
package pipeline
