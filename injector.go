package htgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/alnah/go-htgen/internal/logfields"
	"github.com/alnah/go-htgen/internal/pipeline"
)

// injector merges a page's bound document into its fragment.
type injector struct {
	renderer    pipeline.MarkupRenderer
	reader      SourceReader
	containerID string
	logger      *slog.Logger
}

// inject returns the final fragment of page and whether its markup was
// rendered in degraded mode.
func (in *injector) inject(ctx context.Context, page Page, fragment string) (string, bool, error) {
	b := page.Binding

	switch b.Kind {
	case NoInjection:
		return fragment, false, nil

	case VerbatimReplace:
		text, err := in.readSource(page)
		if err != nil {
			return "", false, err
		}
		out, err := pipeline.ReplaceText(fragment, b.Target, text)
		if err != nil {
			return "", false, fmt.Errorf("page %s: %w", page.Key, err)
		}
		return out, false, nil

	case MarkupAppend:
		src, err := in.readSource(page)
		if err != nil {
			return "", false, err
		}

		rendered, err := in.renderer.Render(ctx, src)
		degraded := errors.Is(err, pipeline.ErrRenderDegraded)
		if err != nil && !degraded {
			return "", false, fmt.Errorf("page %s: rendering %s: %w", page.Key, b.Source, err)
		}
		if degraded {
			in.logger.Warn("markup rendered in degraded mode",
				logfields.Page(page.Key), logfields.Path(b.Source), logfields.Error(err))
		}

		target := b.Target
		if target == "" {
			target = in.containerID
		}
		out, err := pipeline.AppendHTML(fragment, target, rendered)
		if err != nil {
			return "", false, fmt.Errorf("page %s: %w", page.Key, err)
		}
		return out, degraded, nil

	default:
		return "", false, fmt.Errorf("page %s: unknown binding %s", page.Key, b.Kind)
	}
}

// readSource reads the bound document, mapping absence to the sentinel that
// matches the binding.
func (in *injector) readSource(page Page) (string, error) {
	b := page.Binding
	content, err := in.reader.ReadSource(b.Source)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("page %s: %w", page.Key, err)
	}
	if b.Version != "" {
		return "", fmt.Errorf("%w: page %s: version %s: %s", ErrMissingChangelog, page.Key, b.Version, b.Source)
	}
	return "", fmt.Errorf("%w: page %s: %s", ErrMissingSource, page.Key, b.Source)
}
