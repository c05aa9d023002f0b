package trmarkup

import (
	"fmt"
	"unicode/utf8"
)

// Target receives the output nodes of a rendered translation.
type Target interface {
	// Clear removes all existing content.
	Clear()
	// Append adds node after the existing content.
	Append(node Node)
}

// RenderFunc renders a transpiled translation into target.
type RenderFunc func(target Target, params Parameters)

// RenderRequest configures Render.
type RenderRequest struct {
	Text        string
	Transpilers []Transpiler
	Translation Translation
	Target      Target
	Parameters  Parameters
}

// Tokenize converts source into a token sequence. At every offset the
// transpilers are tried in order and the first match wins. Characters that no
// transpiler recognizes are skipped one rune at a time.
func Tokenize(source string, transpilers []Transpiler) []Token {
	var tokens []Token
	offset := 0
	for offset < len(source) {
		res, ok := tokenizeAt(source, offset, transpilers)
		if ok {
			tokens = append(tokens, res.Token)
			offset = res.NextOffset
			continue
		}
		_, size := utf8.DecodeRuneInString(source[offset:])
		offset += size
	}
	return tokens
}

func tokenizeAt(source string, offset int, transpilers []Transpiler) (TokenizeResult, bool) {
	for _, t := range transpilers {
		res, ok := t.Tokenize(source, offset)
		if ok && res.NextOffset > offset {
			return res, true
		}
	}
	return TokenizeResult{}, false
}

// Transpile converts tokens into an ordered list of renderers. Tokens that no
// transpiler claims contribute nothing.
func Transpile(tokens []Token, transpilers []Transpiler, translation Translation) []Renderer {
	ctx := NewContext(tokens, translation, transpilers)
	_, renderers := ctx.TranspileUntil(0, never)
	return renderers
}

// CreateRenderer tokenizes and transpiles text once and returns a function
// that renders the result for any parameters. The returned function clears
// the target before appending the output nodes.
func CreateRenderer(text string, transpilers []Transpiler, translation Translation) RenderFunc {
	renderers := Transpile(Tokenize(text, transpilers), transpilers, translation)
	return func(target Target, params Parameters) {
		target.Clear()
		for _, render := range renderers {
			target.Append(render(params))
		}
	}
}

// Render transpiles req.Text and renders it into req.Target.
func Render(req RenderRequest) error {
	if req.Target == nil {
		return fmt.Errorf("render: target is nil")
	}
	params := req.Parameters
	if params == nil {
		params = Parameters{}
	}
	CreateRenderer(req.Text, req.Transpilers, req.Translation)(req.Target, params)
	return nil
}
