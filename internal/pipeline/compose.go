package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Skeleton defaults matching the legacy site template.
const (
	DefaultSlotID      = "wikitext"
	DefaultPlaceholder = "$(TITLE)"
)

// Sentinel errors for skeleton validation.
var (
	ErrMissingSlot   = errors.New("skeleton has no content slot")
	ErrDuplicateSlot = errors.New("skeleton has more than one content slot")
)

// Skeleton is the shared page template. It keeps only the source text, never
// a parsed tree: every composition parses its own copy, so no page can see
// another page's content.
type Skeleton struct {
	source      string
	slotID      string
	placeholder string
}

// NewSkeleton validates source and returns a Skeleton.
// The source must contain exactly one element with id=slotID; zero yields
// ErrMissingSlot and more than one yields ErrDuplicateSlot.
// Empty slotID or placeholder fall back to the defaults.
func NewSkeleton(source, slotID, placeholder string) (*Skeleton, error) {
	if slotID == "" {
		slotID = DefaultSlotID
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	s := &Skeleton{source: source, slotID: slotID, placeholder: placeholder}
	if _, _, err := s.parse(); err != nil {
		return nil, err
	}
	return s, nil
}

// parse builds a fresh tree from the source and locates the slot.
func (s *Skeleton) parse() (*html.Node, *html.Node, error) {
	doc, err := html.Parse(strings.NewReader(s.source))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing skeleton: %w", err)
	}

	slots := findByID(doc, s.slotID)
	switch len(slots) {
	case 0:
		return nil, nil, fmt.Errorf("%w: id=%q", ErrMissingSlot, s.slotID)
	case 1:
		return doc, slots[0], nil
	default:
		return nil, nil, fmt.Errorf("%w: id=%q appears %d times", ErrDuplicateSlot, s.slotID, len(slots))
	}
}

// Compose replaces the slot element wholesale with the fragment's top-level
// nodes, serializes the document, and substitutes every occurrence of the
// placeholder with the HTML-escaped title.
// Identical inputs always produce identical output.
func (s *Skeleton) Compose(fragment, title string) (string, error) {
	doc, slot, err := s.parse()
	if err != nil {
		return "", err
	}

	parent := slot.Parent
	nodes, err := parseNodes(fragment, parent)
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}
	for _, n := range nodes {
		parent.InsertBefore(n, slot)
	}
	parent.RemoveChild(slot)

	var buf strings.Builder
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}

	return strings.ReplaceAll(buf.String(), s.placeholder, html.EscapeString(title)), nil
}
