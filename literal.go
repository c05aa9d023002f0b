package trmarkup

import (
	"strings"
	"unicode/utf8"
)

// literalChar is a single character of literal text. It holds the source
// bytes so that invalid UTF-8 survives a round trip unchanged.
type literalChar string

// StringLiteralTranspiler renders every character that no other transpiler
// claims as plain text. It recognizes any character and must therefore be the
// last transpiler in the list.
type StringLiteralTranspiler struct {
	factory RendererFactory
}

// NewStringLiteralTranspiler returns a literal transpiler using factory.
func NewStringLiteralTranspiler(factory RendererFactory) *StringLiteralTranspiler {
	return &StringLiteralTranspiler{factory: factory}
}

func (l *StringLiteralTranspiler) Tokenize(source string, offset int) (TokenizeResult, bool) {
	if offset >= len(source) {
		return TokenizeResult{}, false
	}
	_, size := utf8.DecodeRuneInString(source[offset:])
	return TokenizeResult{
		NextOffset: offset + size,
		Token:      literalChar(source[offset : offset+size]),
	}, true
}

// Transpile joins the longest run of literal characters at offset into one
// text renderer.
func (l *StringLiteralTranspiler) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	tokens := ctx.Tokens()
	var b strings.Builder
	end := offset
	for end < len(tokens) {
		ch, ok := tokens[end].(literalChar)
		if !ok {
			break
		}
		b.WriteString(string(ch))
		end++
	}
	if end == offset {
		return TranspileResult{}, false
	}
	return TranspileResult{
		NextOffset: end,
		Renderer:   l.factory.TextRenderer(b.String()),
	}, true
}
