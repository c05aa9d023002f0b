// Package term prints rendered translation markup to terminals.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderRequest configures Render.
type RenderRequest struct {
	// Nodes are the rendered translation nodes, typically dom.Target.Nodes.
	Nodes   []*html.Node
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []Option
}

// Render prints req.Nodes to req.Writer, wrapping at req.Width.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("term: writer is nil")
	}
	cfg := defaultConfig()
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	th := req.Theme
	if th == nil {
		th = DefaultTheme()
	}
	r := &renderer{
		cfg:    cfg,
		styles: th.Styles(),
		layout: layout{width: req.Width, softWrap: cfg.softWrap},
	}
	for _, n := range req.Nodes {
		r.walk(n, r.styles.Text, "")
	}
	w := bufio.NewWriter(req.Writer)
	for _, line := range r.layout.finish() {
		writeLine(w, line, cfg)
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("term: write: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("term: write: %w", err)
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(nodes []*html.Node, width int, theme Theme, opts ...Option) (string, error) {
	var b strings.Builder
	err := Render(RenderRequest{Nodes: nodes, Writer: &b, Width: width, Theme: theme, Options: opts})
	return b.String(), err
}

type renderer struct {
	cfg    config
	styles Styles
	layout layout
}

func (r *renderer) walk(n *html.Node, style Style, link string) {
	switch n.Type {
	case html.TextNode:
		r.layout.addText(n.Data, style, link)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.walk(c, style, link)
		}
		return
	}

	var href string
	switch n.DataAtom {
	case atom.B, atom.Strong:
		style = style.merge(r.styles.Strong)
	case atom.I, atom.Em:
		style = style.merge(r.styles.Emphasis)
	case atom.A:
		style = style.merge(r.styles.LinkText)
		href = attr(n, "href")
		if href != "" {
			link = href
		}
	case atom.Br:
		r.layout.addText("\n", style, link)
		return
	}
	if color, ok := cssColor(attr(n, "style")); ok {
		style.Color = color
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c, style, link)
	}
	if href != "" && !r.cfg.osc8 {
		limit := r.layout.width - 2
		r.layout.addText(" ("+fitURL(href, limit)+")", r.styles.LinkURL, "")
	}
}

func writeLine(w *bufio.Writer, line []fragment, cfg config) {
	for _, f := range line {
		text := f.text
		if prefix := f.style.prefix(cfg.profile); prefix != "" {
			text = prefix + text + sgrReset
		}
		if cfg.osc8 && f.link != "" {
			text = hyperlink(f.link, text)
		}
		w.WriteString(text)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// cssColor extracts the color declaration of an inline style attribute.
func cssColor(style string) (string, bool) {
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok || strings.ToLower(strings.TrimSpace(name)) != "color" {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return "", false
		}
		return value, true
	}
	return "", false
}
