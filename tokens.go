package trmarkup

// Token is a value recognized by a Transpiler while tokenizing a translation.
// Its representation is private to the transpiler that produced it; tokens of
// different transpilers must never compare equal.
type Token = any

// Node is an output node produced by a Renderer. The engine never inspects
// nodes; their type is defined by the RendererFactory in use.
type Node = any

// Parameters holds the translation parameters supplied at render time.
type Parameters map[string]any

// Translation is the dictionary that contains the translation being rendered.
type Translation map[string]any

// Renderer creates an output node for the given parameters. Renderers must not
// mutate the parameters and may be invoked any number of times.
type Renderer func(params Parameters) Node

// TokenizeResult describes a recognized token.
type TokenizeResult struct {
	// NextOffset is the byte offset at which tokenizing continues.
	NextOffset int
	Token      Token
}

// TranspileResult describes a transpiled token range.
type TranspileResult struct {
	// NextOffset is the token offset at which transpiling continues.
	NextOffset int
	Renderer   Renderer
}
