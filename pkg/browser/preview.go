package browser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// htmlPreview is a cleaned, bounded rendering of page markup, suitable
// for showing a caller what the page actually contains without scripts,
// styles, and other noise.
type htmlPreview struct {
	HTML      string
	Truncated bool
}

// previewHTML parses raw markup, strips noise elements and comments,
// keeps only attributes useful for selector targeting, and renders the
// remainder bounded at maxLength characters.
func previewHTML(rawHTML string, maxLength int) (*htmlPreview, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	w := &previewWriter{limit: maxLength}
	w.node(doc)

	return &htmlPreview{
		HTML:      strings.TrimSpace(w.builder.String()),
		Truncated: w.truncated,
	}, nil
}

// previewWriter renders nodes until the output budget is spent.
type previewWriter struct {
	builder   strings.Builder
	limit     int
	truncated bool
}

// strippedElements are removed entirely, subtree included.
var strippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"embed":    true,
	"object":   true,
	"svg":      true,
	"link":     true,
	"meta":     true,
}

// voidElements have no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"hr": true, "img": true, "input": true, "source": true,
	"track": true, "wbr": true,
}

func (w *previewWriter) node(n *html.Node) {
	if w.truncated {
		return
	}

	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		return
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		w.element(n)
		return
	}

	// Document and fragment nodes: descend.
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c)
	}
}

func (w *previewWriter) text(data string) {
	text := strings.Join(strings.Fields(data), " ")
	if text == "" {
		return
	}
	w.write(text)
}

func (w *previewWriter) element(n *html.Node) {
	tag := strings.ToLower(n.Data)
	if strippedElements[tag] {
		return
	}

	var open strings.Builder
	open.WriteString("<")
	open.WriteString(tag)
	for _, attr := range n.Attr {
		if keepAttribute(tag, strings.ToLower(attr.Key)) {
			fmt.Fprintf(&open, " %s=%q", attr.Key, attr.Val)
		}
	}
	open.WriteString(">")
	w.write(open.String())

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c)
		if w.truncated {
			return
		}
	}

	if !voidElements[tag] {
		w.write(fmt.Sprintf("</%s>", tag))
	}
}

// write appends s, cutting at the budget boundary.
func (w *previewWriter) write(s string) {
	if w.truncated {
		return
	}
	remaining := w.limit - w.builder.Len()
	if len(s) >= remaining {
		w.builder.WriteString(s[:remaining])
		w.truncated = true
		return
	}
	w.builder.WriteString(s)
}

// keepAttribute reports whether an attribute is worth showing in a
// preview: identity and targeting attributes, plus the handful of
// tag-specific ones a caller needs to build selectors.
func keepAttribute(tag, name string) bool {
	switch name {
	case "id", "class", "role", "aria-label", "name", "type", "placeholder", "value":
		return true
	}
	if strings.HasPrefix(name, "data-") {
		return true
	}
	switch tag {
	case "a":
		return name == "href"
	case "img":
		return name == "src" || name == "alt"
	case "form":
		return name == "action" || name == "method"
	}
	return false
}
