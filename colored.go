package trmarkup

import "strings"

const (
	colorStartPrefix = "[c:"
	colorEndToken    = "[/c]"
)

type colorStart struct {
	color string
}

type colorEnd struct{}

// ColoredTextTranspiler renders [c:COLOR]...[/c] as a span styled with the
// CSS color COLOR.
type ColoredTextTranspiler struct {
	factory RendererFactory
}

// NewColoredTextTranspiler returns a colored text transpiler.
func NewColoredTextTranspiler(factory RendererFactory) *ColoredTextTranspiler {
	return &ColoredTextTranspiler{factory: factory}
}

func (c *ColoredTextTranspiler) Tokenize(source string, offset int) (TokenizeResult, bool) {
	rest := source[offset:]
	if strings.HasPrefix(rest, colorEndToken) {
		return TokenizeResult{NextOffset: offset + len(colorEndToken), Token: colorEnd{}}, true
	}
	if !strings.HasPrefix(rest, colorStartPrefix) {
		return TokenizeResult{}, false
	}
	end := strings.IndexByte(rest[len(colorStartPrefix):], ']')
	if end < 0 {
		return TokenizeResult{}, false
	}
	return TokenizeResult{
		NextOffset: offset + len(colorStartPrefix) + end + 1,
		Token:      colorStart{color: rest[len(colorStartPrefix) : len(colorStartPrefix)+end]},
	}, true
}

func (c *ColoredTextTranspiler) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	tok, ok := ctx.Token(offset)
	if !ok {
		return TranspileResult{}, false
	}
	start, ok := tok.(colorStart)
	if !ok {
		return TranspileResult{}, false
	}
	stop, children := ctx.TranspileUntil(offset+1, func(tok Token, _ int) bool {
		_, ok := tok.(colorEnd)
		return ok
	})
	style := "color: " + start.color
	return TranspileResult{
		NextOffset: min(stop+1, ctx.Len()),
		Renderer: c.factory.ElementRenderer("span", children, func(_ Parameters, attrs *Attributes) {
			attrs.Set("style", style)
		}),
	}, true
}
