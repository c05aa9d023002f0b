// Package dom renders translation markup into golang.org/x/net/html node
// trees.
package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pkt.systems/trmarkup"
)

// Factory builds *html.Node output.
type Factory struct{}

// NewFactory returns an HTML node factory.
func NewFactory() Factory { return Factory{} }

var _ trmarkup.RendererFactory = Factory{}

func (Factory) TextRenderer(text string) trmarkup.Renderer {
	return func(trmarkup.Parameters) trmarkup.Node {
		return textNode(text)
	}
}

func (Factory) DynamicTextRenderer(text func(params trmarkup.Parameters) string) trmarkup.Renderer {
	return func(params trmarkup.Parameters) trmarkup.Node {
		return textNode(text(params))
	}
}

func (Factory) ElementRenderer(tag string, children []trmarkup.Renderer, decorators ...trmarkup.Decorator) trmarkup.Renderer {
	tag = strings.ToLower(tag)
	a := atom.Lookup([]byte(tag))
	return func(params trmarkup.Parameters) trmarkup.Node {
		el := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: a}
		for _, child := range children {
			el.AppendChild(asNode(child(params)))
		}
		for _, attr := range trmarkup.Decorate(params, decorators).All() {
			el.Attr = append(el.Attr, html.Attribute{Key: attr.Key, Val: attr.Val})
		}
		return el
	}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// asNode converts renderer output to a detached *html.Node. Output that is
// not a node is rendered as text.
func asNode(n trmarkup.Node) *html.Node {
	switch v := n.(type) {
	case *html.Node:
		if v == nil {
			return textNode("")
		}
		if v.Parent != nil {
			v.Parent.RemoveChild(v)
		}
		return v
	case string:
		return textNode(v)
	case nil:
		return textNode("")
	}
	return textNode(fmt.Sprint(n))
}

// Target collects rendered nodes as the children of a container element.
type Target struct {
	root *html.Node
}

var _ trmarkup.Target = (*Target)(nil)

// NewTarget returns a target backed by a detached span element.
func NewTarget() *Target {
	return &Target{root: &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}}
}

// NewTargetFor returns a target that fills root.
func NewTargetFor(root *html.Node) *Target {
	return &Target{root: root}
}

// Root returns the container node.
func (t *Target) Root() *html.Node { return t.root }

func (t *Target) Clear() {
	for c := t.root.FirstChild; c != nil; {
		next := c.NextSibling
		t.root.RemoveChild(c)
		c = next
	}
}

func (t *Target) Append(node trmarkup.Node) {
	t.root.AppendChild(asNode(node))
}

// Nodes returns the rendered top-level nodes.
func (t *Target) Nodes() []*html.Node {
	var out []*html.Node
	for c := t.root.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// TextContent returns the concatenated text of all rendered nodes.
func (t *Target) TextContent() string { return TextContent(t.root) }

// HTML serializes the rendered nodes.
func (t *Target) HTML() (string, error) { return InnerHTML(t.root) }

// TextContent returns the concatenated text of n and its descendants.
func TextContent(n *html.Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("dom: render %s: %w", describe(c), err)
		}
	}
	return buf.String(), nil
}

// OuterHTML serializes n.
func OuterHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("dom: render %s: %w", describe(n), err)
	}
	return buf.String(), nil
}

// Attr returns the value of the attribute key of n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func describe(n *html.Node) string {
	if n.Type == html.ElementNode {
		return "<" + n.Data + ">"
	}
	return "node"
}
