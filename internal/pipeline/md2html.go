package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// ErrRenderDegraded indicates the markup could not be converted and a
// best-effort rendering was returned instead. It is never fatal.
var ErrRenderDegraded = errors.New("markup rendered in degraded mode")

// MarkupRenderer abstracts lightweight markup to HTML conversion.
type MarkupRenderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// GoldmarkRenderer converts markup to an HTML fragment using goldmark (pure Go).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions and
// syntax highlighting for fenced code blocks. Extra options are applied after
// the defaults.
func NewGoldmarkRenderer(opts ...goldmark.Option) *GoldmarkRenderer {
	base := []goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // Colors come from the site stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Changelog sections are linkable
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // Auxiliary documents are project-maintained and may embed HTML
		),
	}
	return &GoldmarkRenderer{md: goldmark.New(append(base, opts...)...)}
}

// Render converts markup content to an HTML fragment.
// On conversion failure it returns the escaped source inside a <pre> block
// together with ErrRenderDegraded, so the caller can still publish the page.
func (r *GoldmarkRenderer) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content = PreprocessMarkup(content)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return degradedHTML(content), fmt.Errorf("%w: %v", ErrRenderDegraded, err)
	}
	return buf.String(), nil
}

// degradedHTML keeps the source readable when conversion fails.
func degradedHTML(content string) string {
	return "<pre>" + html.EscapeString(content) + "</pre>\n"
}

// Compile-time interface check.
var _ MarkupRenderer = (*GoldmarkRenderer)(nil)
