package htgen

import (
	"log/slog"

	"github.com/alnah/go-htgen/internal/pipeline"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build progress.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithRenderer replaces the markup renderer.
func WithRenderer(r pipeline.MarkupRenderer) Option {
	return func(b *Builder) {
		b.renderer = r
	}
}

// WithReader replaces the reader for fragments and auxiliary documents.
func WithReader(r SourceReader) Option {
	return func(b *Builder) {
		b.reader = r
	}
}

// WithSlotID sets the id of the skeleton's content slot.
func WithSlotID(id string) Option {
	return func(b *Builder) {
		b.slotID = id
	}
}

// WithPlaceholder sets the title placeholder token.
func WithPlaceholder(token string) Option {
	return func(b *Builder) {
		b.placeholder = token
	}
}

// WithContainerID sets the element id that append bindings without a target
// write into. When empty, a sole div, section, article or main wrapping the
// fragment is used, and otherwise the content goes at the fragment's end.
func WithContainerID(id string) Option {
	return func(b *Builder) {
		b.containerID = id
	}
}
