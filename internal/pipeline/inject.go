package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrMissingTarget indicates the fragment has no element with the id an
	// injection was bound to.
	ErrMissingTarget = errors.New("injection target element not found")

	// ErrInvalidText indicates replacement text that HTML cannot carry as is.
	ErrInvalidText = errors.New("text contains a NUL byte")
)

// ReplaceText sets text as the exact text content of the element with
// id=targetID inside fragment. Whitespace and line breaks are kept as is and
// no markup is interpreted; the serializer escapes what needs escaping.
// Returns ErrMissingTarget if no such element exists, and ErrInvalidText if
// text contains a NUL byte, which HTML parsing drops.
func ReplaceText(fragment, targetID, text string) (string, error) {
	if i := strings.IndexByte(text, 0); i >= 0 {
		return "", fmt.Errorf("%w at offset %d", ErrInvalidText, i)
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	targets := findByID(root, targetID)
	if len(targets) == 0 {
		return "", fmt.Errorf("%w: id=%q", ErrMissingTarget, targetID)
	}
	setTextContent(targets[0], text)

	return renderChildren(root)
}

// AppendHTML appends content as the last children of the fragment's primary
// content container, keeping the fragment's own content in front of it.
//
// The container is the element with id=containerID when containerID is set.
// Otherwise it is the fragment's wrapper element: a div, section, article or
// main that is the only top-level element, with nothing but whitespace around
// it. Any other fragment gets content appended at its end, after its last
// top-level node.
// Returns ErrMissingTarget if containerID is set but not found.
func AppendHTML(fragment, containerID, content string) (string, error) {
	root, err := parseFragment(fragment)
	if err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	container := root
	if containerID != "" {
		matches := findByID(root, containerID)
		if len(matches) == 0 {
			return "", fmt.Errorf("%w: id=%q", ErrMissingTarget, containerID)
		}
		container = matches[0]
	} else if wrapper := soleWrapper(root); wrapper != nil {
		container = wrapper
	}

	nodes, err := parseNodes(content, container)
	if err != nil {
		return "", fmt.Errorf("parsing injected content: %w", err)
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return renderChildren(root)
}

// soleWrapper returns the single flow container wrapping the whole fragment,
// or nil when the fragment has several top-level nodes or its only element
// cannot hold arbitrary flow content.
func soleWrapper(root *html.Node) *html.Node {
	var wrapper *html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			if wrapper != nil {
				return nil
			}
			wrapper = c
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
		case html.CommentNode:
		default:
			return nil
		}
	}
	if wrapper == nil {
		return nil
	}
	switch wrapper.DataAtom {
	case atom.Div, atom.Section, atom.Article, atom.Main:
		return wrapper
	}
	return nil
}
