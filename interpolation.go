package trmarkup

import (
	"fmt"
	"slices"
	"strings"
)

// ExpressionMatcher finds interpolation expressions in a translation.
type ExpressionMatcher interface {
	// MatchExpression returns the byte length of the expression starting at
	// offset, or false when there is none.
	MatchExpression(source string, offset int) (int, bool)
}

// MatcherFunc adapts a function to ExpressionMatcher.
type MatcherFunc func(source string, offset int) (int, bool)

func (f MatcherFunc) MatchExpression(source string, offset int) (int, bool) {
	return f(source, offset)
}

// DefaultExpressionMatcher matches {{...}} expressions.
var DefaultExpressionMatcher ExpressionMatcher = MatcherFunc(matchBraces)

func matchBraces(source string, offset int) (int, bool) {
	if !strings.HasPrefix(source[offset:], "{{") {
		return 0, false
	}
	end := strings.Index(source[offset+2:], "}}")
	if end < 0 {
		return 0, false
	}
	return end + 4, true
}

// ExpressionEvaluator expands an interpolation expression to text.
type ExpressionEvaluator interface {
	// Evaluate returns the text for expr. translation is the dictionary that
	// holds the translation being rendered.
	Evaluate(expr string, params Parameters, translation Translation) string
}

// EvaluatorFunc adapts a function to ExpressionEvaluator.
type EvaluatorFunc func(expr string, params Parameters, translation Translation) string

func (f EvaluatorFunc) Evaluate(expr string, params Parameters, translation Translation) string {
	return f(expr, params, translation)
}

const (
	// maxInterpolationDepth bounds chains of translation references.
	maxInterpolationDepth = 100
	// maxInterpolationExpansions bounds the translation references expanded
	// by one top-level evaluation.
	maxInterpolationExpansions = 10000
)

// DefaultEvaluator evaluates {{ path }} expressions. The path is looked up as
// a dotted path in the parameters first and as a key of the translation
// dictionary second, in which case the referenced translation is interpolated
// as well. Unknown paths, references back to a translation that is already
// being expanded and references beyond the expansion limits evaluate to "".
var DefaultEvaluator ExpressionEvaluator = EvaluatorFunc(func(expr string, params Parameters, translation Translation) string {
	x := &expansion{params: params, translation: translation, budget: maxInterpolationExpansions}
	return x.evaluate(expr)
})

// expansion is the state of one top-level evaluation.
type expansion struct {
	params      Parameters
	translation Translation
	// active holds the translation keys on the current expansion path.
	active []string
	budget int
}

func (x *expansion) evaluate(expr string) string {
	path := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(expr, "{{"), "}}"))
	if path == "" {
		return ""
	}
	if v, ok := lookupPath(map[string]any(x.params), path); ok {
		return labelText(v)
	}
	if len(x.active) >= maxInterpolationDepth || x.budget <= 0 || slices.Contains(x.active, path) {
		return ""
	}
	v, ok := lookupPath(map[string]any(x.translation), path)
	if !ok {
		return ""
	}
	text, ok := v.(string)
	if !ok {
		return labelText(v)
	}
	x.budget--
	x.active = append(x.active, path)
	out := x.interpolate(text)
	x.active = x.active[:len(x.active)-1]
	return out
}

// interpolate expands every {{...}} expression of text.
func (x *expansion) interpolate(text string) string {
	var b strings.Builder
	offset := 0
	for offset < len(text) {
		if n, ok := matchBraces(text, offset); ok {
			b.WriteString(x.evaluate(text[offset : offset+n]))
			offset += n
			continue
		}
		b.WriteByte(text[offset])
		offset++
	}
	return b.String()
}

func lookupPath(root map[string]any, path string) (any, bool) {
	if root == nil {
		return nil, false
	}
	if v, ok := root[path]; ok {
		return v, true
	}
	var cur any = root
	for _, part := range strings.Split(path, ".") {
		switch m := cur.(type) {
		case map[string]any:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			cur = v
		case Parameters:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			cur = v
		case Translation:
			v, ok := m[part]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

// interpolationSegment is the token for one interpolation expression.
type interpolationSegment struct {
	expr string
}

// StringInterpolationTranspiler renders interpolation expressions as text
// computed by an evaluator at render time. Panics raised by the matcher or
// the evaluator are not recovered.
type StringInterpolationTranspiler struct {
	factory   RendererFactory
	matcher   ExpressionMatcher
	evaluator ExpressionEvaluator
}

// NewStringInterpolationTranspiler returns an interpolation transpiler. Nil
// matcher and evaluator select DefaultExpressionMatcher and DefaultEvaluator.
func NewStringInterpolationTranspiler(factory RendererFactory, matcher ExpressionMatcher, evaluator ExpressionEvaluator) *StringInterpolationTranspiler {
	if matcher == nil {
		matcher = DefaultExpressionMatcher
	}
	if evaluator == nil {
		evaluator = DefaultEvaluator
	}
	return &StringInterpolationTranspiler{factory: factory, matcher: matcher, evaluator: evaluator}
}

func (s *StringInterpolationTranspiler) Tokenize(source string, offset int) (TokenizeResult, bool) {
	n, ok := s.matcher.MatchExpression(source, offset)
	if !ok || n <= 0 {
		return TokenizeResult{}, false
	}
	if offset+n > len(source) {
		panic(fmt.Sprintf("interpolation: matched length %d exceeds source at offset %d", n, offset))
	}
	return TokenizeResult{
		NextOffset: offset + n,
		Token:      interpolationSegment{expr: source[offset : offset+n]},
	}, true
}

func (s *StringInterpolationTranspiler) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	tok, ok := ctx.Token(offset)
	if !ok {
		return TranspileResult{}, false
	}
	seg, ok := tok.(interpolationSegment)
	if !ok {
		return TranspileResult{}, false
	}
	expr := seg.expr
	translation := ctx.Translation()
	evaluator := s.evaluator
	return TranspileResult{
		NextOffset: offset + 1,
		Renderer: s.factory.DynamicTextRenderer(func(params Parameters) string {
			return evaluator.Evaluate(expr, params, translation)
		}),
	}, true
}
