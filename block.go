package trmarkup

import "strings"

// BlockBoundary is the token for a literal block start or end marker.
type BlockBoundary struct {
	Literal string
}

// BlockTranspiler transpiles content enclosed by literal start and end
// markers. Blocks nest, and a block without an end marker extends to the end
// of the translation.
type BlockTranspiler struct {
	start  string
	end    string
	create func(children []Renderer) Renderer
}

// NewBlockTranspiler returns a transpiler for blocks delimited by start and
// end. create wraps the renderers of the block content.
func NewBlockTranspiler(start, end string, create func(children []Renderer) Renderer) *BlockTranspiler {
	return &BlockTranspiler{start: start, end: end, create: create}
}

// StartToken returns the block start marker.
func (b *BlockTranspiler) StartToken() string { return b.start }

// EndToken returns the block end marker.
func (b *BlockTranspiler) EndToken() string { return b.end }

func (b *BlockTranspiler) Tokenize(source string, offset int) (TokenizeResult, bool) {
	if res, ok := recognizeBoundary(source, offset, b.start); ok {
		return res, true
	}
	return recognizeBoundary(source, offset, b.end)
}

func recognizeBoundary(source string, offset int, literal string) (TokenizeResult, bool) {
	if literal == "" || !strings.HasPrefix(source[offset:], literal) {
		return TokenizeResult{}, false
	}
	return TokenizeResult{
		NextOffset: offset + len(literal),
		Token:      BlockBoundary{Literal: literal},
	}, true
}

func (b *BlockTranspiler) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	tok, ok := ctx.Token(offset)
	if !ok || !b.isStart(tok) {
		return TranspileResult{}, false
	}
	stop, children := ctx.TranspileUntil(offset+1, func(tok Token, _ int) bool {
		return b.isEnd(tok)
	})
	return TranspileResult{
		NextOffset: min(stop+1, ctx.Len()),
		Renderer:   b.create(children),
	}, true
}

func (b *BlockTranspiler) isStart(tok Token) bool {
	boundary, ok := tok.(BlockBoundary)
	return ok && boundary.Literal == b.start
}

func (b *BlockTranspiler) isEnd(tok Token) bool {
	boundary, ok := tok.(BlockBoundary)
	return ok && boundary.Literal == b.end
}

// NewBoldTextTranspiler returns a transpiler that renders [b]...[/b] as a b
// element.
func NewBoldTextTranspiler(factory RendererFactory) *BlockTranspiler {
	return NewBlockTranspiler("[b]", "[/b]", func(children []Renderer) Renderer {
		return factory.ElementRenderer("b", children)
	})
}

// NewItalicTextTranspiler returns a transpiler that renders [i]...[/i] as an
// i element.
func NewItalicTextTranspiler(factory RendererFactory) *BlockTranspiler {
	return NewBlockTranspiler("[i]", "[/i]", func(children []Renderer) Renderer {
		return factory.ElementRenderer("i", children)
	})
}
