package trmarkup

// Transpiler recognizes one markup construct in both phases of the engine.
//
// Tokenize attempts to recognize a token starting exactly at the byte offset
// of source. It must be a pure function of its arguments and must return a
// NextOffset greater than offset when it reports a match.
//
// Transpile attempts to consume the tokens starting at offset and returns a
// renderer for them. A transpiler may call back into ctx to transpile nested
// content. Reporting false means the token at offset is not owned by this
// transpiler.
type Transpiler interface {
	Tokenize(source string, offset int) (TokenizeResult, bool)
	Transpile(offset int, ctx *Context) (TranspileResult, bool)
}

// Context is the state shared by all transpilers during a single top-level
// transpile pass. It must not be reused across passes or shared between
// goroutines.
type Context struct {
	tokens      []Token
	translation Translation
	transpilers []Transpiler
}

// NewContext returns a context over tokens. The order of transpilers decides
// which transpiler claims a token when more than one could.
func NewContext(tokens []Token, translation Translation, transpilers []Transpiler) *Context {
	return &Context{
		tokens:      tokens,
		translation: translation,
		transpilers: transpilers,
	}
}

// Tokens returns the token sequence. Callers must not modify it.
func (c *Context) Tokens() []Token { return c.tokens }

// Len returns the number of tokens.
func (c *Context) Len() int { return len(c.tokens) }

// Token returns the token at offset, or false when offset is out of range.
func (c *Context) Token(offset int) (Token, bool) {
	if offset < 0 || offset >= len(c.tokens) {
		return nil, false
	}
	return c.tokens[offset], true
}

// Translation returns the dictionary containing the rendered translation.
func (c *Context) Translation() Translation { return c.translation }

// Transpile asks each transpiler in order to transpile the tokens at offset
// and returns the first result that makes progress.
func (c *Context) Transpile(offset int) (TranspileResult, bool) {
	if offset < 0 || offset >= len(c.tokens) {
		return TranspileResult{}, false
	}
	for _, t := range c.transpilers {
		res, ok := t.Transpile(offset, c)
		if !ok || res.Renderer == nil {
			continue
		}
		// A result that does not advance would loop forever.
		if res.NextOffset <= offset {
			continue
		}
		return res, true
	}
	return TranspileResult{}, false
}

// TranspileUntil transpiles tokens from start until stop reports true for the
// token at the current offset or the sequence is exhausted. Tokens that no
// transpiler claims are skipped. It returns the offset at which it stopped
// and the renderers collected in order.
func (c *Context) TranspileUntil(start int, stop func(tok Token, offset int) bool) (int, []Renderer) {
	var renderers []Renderer
	offset := start
	if offset < 0 {
		offset = 0
	}
	for offset < len(c.tokens) && !stop(c.tokens[offset], offset) {
		res, ok := c.Transpile(offset)
		if !ok {
			offset++
			continue
		}
		renderers = append(renderers, res.Renderer)
		offset = res.NextOffset
	}
	if offset > len(c.tokens) {
		offset = len(c.tokens)
	}
	return offset, renderers
}

func never(Token, int) bool { return false }
