package trmarkup

import (
	"strings"
	"sync"
)

// SubstitutionToken is the token for a literal substitution marker.
type SubstitutionToken struct {
	Literal string
}

// SubstitutionTranspiler replaces a fixed marker with the output of a single
// renderer. The renderer is created on first use and shared by every
// occurrence of the marker.
type SubstitutionTranspiler struct {
	token  string
	create func() Renderer

	once     sync.Once
	renderer Renderer
}

// NewSubstitutionTranspiler returns a transpiler that substitutes token with
// the renderer returned by create.
func NewSubstitutionTranspiler(token string, create func() Renderer) *SubstitutionTranspiler {
	return &SubstitutionTranspiler{token: token, create: create}
}

// Token returns the substituted marker.
func (s *SubstitutionTranspiler) Token() string { return s.token }

func (s *SubstitutionTranspiler) Tokenize(source string, offset int) (TokenizeResult, bool) {
	if s.token == "" || !strings.HasPrefix(source[offset:], s.token) {
		return TokenizeResult{}, false
	}
	return TokenizeResult{
		NextOffset: offset + len(s.token),
		Token:      SubstitutionToken{Literal: s.token},
	}, true
}

func (s *SubstitutionTranspiler) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	tok, ok := ctx.Token(offset)
	if !ok {
		return TranspileResult{}, false
	}
	sub, ok := tok.(SubstitutionToken)
	if !ok || sub.Literal != s.token {
		return TranspileResult{}, false
	}
	return TranspileResult{NextOffset: offset + 1, Renderer: s.Renderer()}, true
}

// Renderer returns the memoized substitution renderer.
func (s *SubstitutionTranspiler) Renderer() Renderer {
	s.once.Do(func() {
		s.renderer = s.create()
	})
	return s.renderer
}
