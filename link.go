package trmarkup

import "strings"

const (
	linkStartPrefix = "[link:"
	linkEndToken    = "[/link]"
)

// LinkRenderer applies a resolved link value to the attributes of an anchor.
type LinkRenderer interface {
	// Supports reports whether Render understands link.
	Supports(link any) bool
	// Render sets the anchor attributes for link.
	Render(link any, anchor *Attributes)
}

// ExternalLink describes a link to a resource outside the application.
type ExternalLink struct {
	URL string
	// Target is the browsing context the link opens in. Empty leaves the
	// target unset.
	Target string
}

// StringLinkRenderer renders string values as URLs opened in a new window.
type StringLinkRenderer struct{}

func (StringLinkRenderer) Supports(link any) bool {
	_, ok := link.(string)
	return ok
}

func (StringLinkRenderer) Render(link any, anchor *Attributes) {
	anchor.Set("href", link.(string))
	anchor.Set("target", "_blank")
}

// ExternalLinkRenderer renders ExternalLink values. Maps with a string "url"
// entry and an optional string "target" entry are accepted as well, which is
// the shape link parameters take when decoded from TOML or JSON.
type ExternalLinkRenderer struct{}

func (ExternalLinkRenderer) Supports(link any) bool {
	_, ok := externalLinkOf(link)
	return ok
}

func (ExternalLinkRenderer) Render(link any, anchor *Attributes) {
	ext, ok := externalLinkOf(link)
	if !ok {
		return
	}
	anchor.Set("href", ext.URL)
	if ext.Target != "" {
		anchor.Set("target", ext.Target)
	}
}

func externalLinkOf(link any) (ExternalLink, bool) {
	switch v := link.(type) {
	case ExternalLink:
		return v, true
	case *ExternalLink:
		if v == nil {
			return ExternalLink{}, false
		}
		return *v, true
	case map[string]any:
		url, ok := v["url"].(string)
		if !ok {
			return ExternalLink{}, false
		}
		ext := ExternalLink{URL: url}
		switch target := v["target"].(type) {
		case nil:
		case string:
			ext.Target = target
		default:
			return ExternalLink{}, false
		}
		return ext, true
	case Parameters:
		return externalLinkOf(map[string]any(v))
	}
	return ExternalLink{}, false
}

// DefaultLinkRenderers returns the built-in link renderers.
func DefaultLinkRenderers() []LinkRenderer {
	return []LinkRenderer{StringLinkRenderer{}, ExternalLinkRenderer{}}
}

// linkDecorator resolves a link value at render time and applies the first
// link renderer that supports it. Unsupported values leave the anchor bare.
func linkDecorator(resolve func(params Parameters) any, renderers []LinkRenderer) Decorator {
	return func(params Parameters, attrs *Attributes) {
		link := resolve(params)
		for _, r := range renderers {
			if r.Supports(link) {
				r.Render(link, attrs)
				return
			}
		}
	}
}

// linkStart is the token for [link:KEY].
type linkStart struct {
	key string
}

// linkEnd is the token for [/link].
type linkEnd struct{}

// LinkTranspiler renders [link:KEY]...[/link] as an anchor whose link value is
// read from the KEY parameter at render time.
type LinkTranspiler struct {
	factory   RendererFactory
	renderers []LinkRenderer
}

// NewLinkTranspiler returns a link transpiler that applies link values with
// renderers, trying them in order.
func NewLinkTranspiler(factory RendererFactory, renderers ...LinkRenderer) *LinkTranspiler {
	return &LinkTranspiler{factory: factory, renderers: renderers}
}

func (l *LinkTranspiler) Tokenize(source string, offset int) (TokenizeResult, bool) {
	rest := source[offset:]
	if strings.HasPrefix(rest, linkEndToken) {
		return TokenizeResult{NextOffset: offset + len(linkEndToken), Token: linkEnd{}}, true
	}
	if !strings.HasPrefix(rest, linkStartPrefix) {
		return TokenizeResult{}, false
	}
	end := strings.IndexByte(rest[len(linkStartPrefix):], ']')
	if end < 0 {
		return TokenizeResult{}, false
	}
	key := rest[len(linkStartPrefix) : len(linkStartPrefix)+end]
	return TokenizeResult{
		NextOffset: offset + len(linkStartPrefix) + end + 1,
		Token:      linkStart{key: key},
	}, true
}

func (l *LinkTranspiler) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	tok, ok := ctx.Token(offset)
	if !ok {
		return TranspileResult{}, false
	}
	start, ok := tok.(linkStart)
	if !ok {
		return TranspileResult{}, false
	}
	stop, children := ctx.TranspileUntil(offset+1, func(tok Token, _ int) bool {
		_, ok := tok.(linkEnd)
		return ok
	})
	key := start.key
	resolve := func(params Parameters) any { return params[key] }
	return TranspileResult{
		NextOffset: min(stop+1, ctx.Len()),
		Renderer:   l.factory.ElementRenderer("a", children, linkDecorator(resolve, l.renderers)),
	}, true
}
