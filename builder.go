package htgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/alnah/go-htgen/internal/hints"
	"github.com/alnah/go-htgen/internal/logfields"
	"github.com/alnah/go-htgen/internal/pipeline"
)

// Builder composes every page of a registry into the skeleton and writes
// the results. Pages are processed one at a time, in registry order.
type Builder struct {
	skeleton    *pipeline.Skeleton
	writer      OutputWriter
	renderer    pipeline.MarkupRenderer
	reader      SourceReader
	logger      *slog.Logger
	slotID      string
	placeholder string
	containerID string
}

// NewBuilder validates skeleton and returns a Builder writing through w.
// Returns an error wrapping ErrMissingSlot or ErrDuplicateSlot when the
// skeleton does not hold exactly one content slot.
func NewBuilder(skeleton string, w OutputWriter, opts ...Option) (*Builder, error) {
	if w == nil {
		return nil, errors.New("htgen: nil OutputWriter")
	}

	b := &Builder{
		writer:      w,
		renderer:    pipeline.NewGoldmarkRenderer(),
		reader:      FileReader{},
		logger:      discardLogger(),
		slotID:      pipeline.DefaultSlotID,
		placeholder: pipeline.DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(b)
	}

	sk, err := pipeline.NewSkeleton(skeleton, b.slotID, b.placeholder)
	if err != nil {
		if errors.Is(err, ErrMissingSlot) || errors.Is(err, ErrDuplicateSlot) {
			return nil, fmt.Errorf("%w%s", err, hints.ForMissingSlot(b.slotID))
		}
		return nil, err
	}
	b.skeleton = sk

	return b, nil
}

// composed is a page held in memory between composition and writing.
type composed struct {
	page     Page
	doc      []byte
	degraded bool
}

// Build regenerates every page of reg.
//
// The registry is validated and every page composed before anything is
// written: a structural error (missing fragment, changelog, source or
// injection target) aborts with a nil report and no output. Write failures
// do not stop the build; each is recorded in its PageResult and the returned
// error joins them.
func (b *Builder) Build(ctx context.Context, reg *Registry) (*Report, error) {
	start := time.Now()

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	in := &injector{
		renderer:    b.renderer,
		reader:      b.reader,
		containerID: b.containerID,
		logger:      b.logger,
	}

	pages := reg.Pages()
	docs := make([]composed, 0, len(pages))
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := b.composePage(ctx, in, p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, c)
	}
	b.logger.Debug("pages composed", logfields.Stage("compose"), logfields.Count(len(docs)))

	report := &Report{Pages: make([]PageResult, 0, len(docs))}
	for _, c := range docs {
		res := PageResult{Page: c.page, Bytes: len(c.doc), Degraded: c.degraded}
		if err := b.writer.Write(c.page.File, c.doc); err != nil {
			res.Err = fmt.Errorf("%w: page %s: %v", ErrWriteFailure, c.page.File, err)
			b.logger.Error("page not written", logfields.File(c.page.File), logfields.Error(err))
		} else {
			b.logger.Info("page written",
				logfields.File(c.page.File),
				logfields.Binding(c.page.Binding.Kind.String()),
				logfields.Bytes(len(c.doc)),
			)
		}
		report.Pages = append(report.Pages, res)
	}
	report.Duration = time.Since(start)

	b.logger.Debug("build finished",
		logfields.Count(report.Written()),
		logfields.Duration(report.Duration),
	)
	return report, report.Err()
}

// composePage reads, injects and composes a single page.
func (b *Builder) composePage(ctx context.Context, in *injector, p Page) (composed, error) {
	fragment, err := b.reader.ReadSource(p.FragmentPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return composed{}, fmt.Errorf("%w: page %s: %s", ErrMissingFragment, p.Key, p.FragmentPath)
		}
		return composed{}, fmt.Errorf("page %s: %w", p.Key, err)
	}

	fragment, degraded, err := in.inject(ctx, p, fragment)
	if err != nil {
		return composed{}, err
	}

	doc, err := b.skeleton.Compose(fragment, p.Title)
	if err != nil {
		return composed{}, fmt.Errorf("page %s: composing: %w", p.Key, err)
	}

	b.logger.Debug("page composed",
		logfields.Page(p.Key),
		logfields.Stage("compose"),
		logfields.Binding(p.Binding.Kind.String()),
		logfields.Version(p.Binding.Version),
	)
	return composed{page: p, doc: []byte(doc), degraded: degraded}, nil
}
