package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// bodyContext is the default parsing context for page fragments.
func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
}

// contextFor returns a detached parsing context mirroring n, so that nodes
// parsed for insertion under n follow the same content model.
// Falls back to <body> when n is not an element.
func contextFor(n *html.Node) *html.Node {
	if n == nil || n.Type != html.ElementNode {
		return bodyContext()
	}
	return &html.Node{
		Type:      html.ElementNode,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
}

// parseFragment parses HTML in body context and wraps the top-level nodes in
// a document node container for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyContext())
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// parseNodes parses HTML for insertion under parent. The returned nodes are
// detached and can be appended or inserted directly.
func parseNodes(content string, parent *html.Node) ([]*html.Node, error) {
	return html.ParseFragment(strings.NewReader(content), contextFor(parent))
}

// renderChildren renders every child of n, without n itself.
func renderChildren(n *html.Node) (string, error) {
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// findByID returns every element under n whose id attribute equals id, in
// document order.
func findByID(n *html.Node, id string) []*html.Node {
	var found []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && getAttr(n, "id") == id {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return found
}

// getAttr returns the value of the attribute key, or "" if absent.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent concatenates all text under n.
func textContent(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return buf.String()
}

// setTextContent replaces every child of n with a single text node.
func setTextContent(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
