package trmarkup

import (
	"reflect"
	"strings"
	"testing"
)

func TestFirstMatchWins(t *testing.T) {
	transpilers := []Transpiler{
		fixedSubstitution("*", "[a]"),
		fixedSubstitution("*", "[b]"),
		fixedSubstitution("-", "[c]"),
	}
	got := renderString(t, "***-**-*--*---", transpilers, nil)
	want := "[a][a][a][c][a][a][c][a][c][c][a][c][c][c]"
	if got != want {
		t.Fatalf("unexpected output:\n got: %s\nwant: %s", got, want)
	}
}

func TestUnrecognizedCharactersProduceNoNodes(t *testing.T) {
	target := &testTarget{}
	render := CreateRenderer("hello world", []Transpiler{fixedSubstitution("*", "x")}, nil)
	render(target, Parameters{})
	if len(target.nodes) != 0 {
		t.Fatalf("expected zero nodes, got %d", len(target.nodes))
	}
}

func TestTokenizeSkipsWholeRunes(t *testing.T) {
	tokens := Tokenize("é*ü*", []Transpiler{fixedSubstitution("*", "x")})
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	for i, tok := range tokens {
		if tok != (SubstitutionToken{Literal: "*"}) {
			t.Fatalf("token %d: unexpected %#v", i, tok)
		}
	}
	// 0xa9 is the continuation byte of é and must not be matched alone.
	if tokens := Tokenize("é", []Transpiler{fixedSubstitution("\xa9", "x")}); len(tokens) != 0 {
		t.Fatalf("expected no tokens inside a rune, got %d", len(tokens))
	}
}

func TestLiteralRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain text",
		"[b]not markup here[/b] {{x}}",
		"héllo wörld ✓ \U0001F642",
		"broken \xff\xfe utf-8",
		"\x00\x01\x02",
	}
	for _, text := range cases {
		target := &testTarget{}
		CreateRenderer(text, withLiteral(), nil)(target, nil)
		if got := target.textContent(); got != text {
			t.Fatalf("round trip mismatch: got %q want %q", got, text)
		}
		if text != "" && len(target.nodes) != 1 {
			t.Fatalf("expected one text node for %q, got %d", text, len(target.nodes))
		}
	}
}

func TestLiteralJoinsRunsBetweenMarkup(t *testing.T) {
	got := renderString(t, "ab*cd", withLiteral(fixedSubstitution("*", "|")), nil)
	if got != "ab|cd" {
		t.Fatalf("unexpected output %q", got)
	}
	tokens := Tokenize("ab*cd", withLiteral(fixedSubstitution("*", "|")))
	renderers := Transpile(tokens, withLiteral(fixedSubstitution("*", "|")), nil)
	if len(renderers) != 3 {
		t.Fatalf("expected 3 renderers, got %d", len(renderers))
	}
}

func TestRenderClearsTarget(t *testing.T) {
	target := &testTarget{nodes: []*testNode{{text: "stale"}}}
	render := CreateRenderer("[b]x[/b]", withLiteral(NewBoldTextTranspiler(testFactory{})), nil)
	render(target, nil)
	first := target.String()
	render(target, nil)
	second := target.String()
	if first != "<b>x</b>" || first != second {
		t.Fatalf("expected identical renders, got %q and %q", first, second)
	}
	if target.cleared != 2 {
		t.Fatalf("expected 2 clears, got %d", target.cleared)
	}
}

func TestRenderRejectsNilTarget(t *testing.T) {
	err := Render(RenderRequest{Text: "x"})
	if err == nil || !strings.Contains(err.Error(), "target is nil") {
		t.Fatalf("expected nil target error, got %v", err)
	}
}

// stallTranspiler claims every token without making progress.
type stallTranspiler struct{ calls int }

func (s *stallTranspiler) Tokenize(source string, offset int) (TokenizeResult, bool) {
	return TokenizeResult{NextOffset: offset, Token: "stall"}, true
}

func (s *stallTranspiler) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	s.calls++
	return TranspileResult{
		NextOffset: offset,
		Renderer:   testFactory{}.TextRenderer("stall"),
	}, true
}

func TestZeroProgressResultsAreDiscarded(t *testing.T) {
	stall := &stallTranspiler{}
	got := renderString(t, "a*b", withLiteral(stall, fixedSubstitution("*", "!")), nil)
	if got != "a!b" {
		t.Fatalf("unexpected output %q", got)
	}
	if stall.calls == 0 {
		t.Fatalf("expected stalling transpiler to be consulted")
	}
}

func TestContextTranspileOutOfRange(t *testing.T) {
	ctx := NewContext([]Token{"x"}, nil, withLiteral())
	if _, ok := ctx.Transpile(-1); ok {
		t.Fatalf("expected no result for negative offset")
	}
	if _, ok := ctx.Transpile(1); ok {
		t.Fatalf("expected no result past the end")
	}
	if _, ok := ctx.Token(5); ok {
		t.Fatalf("expected no token past the end")
	}
}

func TestTranspileUntilSkipsUnclaimedTokens(t *testing.T) {
	sub := fixedSubstitution("*", "x")
	tokens := []Token{1, SubstitutionToken{Literal: "*"}, 2, 3, SubstitutionToken{Literal: "*"}, "stop", SubstitutionToken{Literal: "*"}}
	ctx := NewContext(tokens, nil, []Transpiler{sub})
	stop, renderers := ctx.TranspileUntil(0, func(tok Token, _ int) bool { return tok == "stop" })
	if stop != 5 {
		t.Fatalf("expected stop at 5, got %d", stop)
	}
	if len(renderers) != 2 {
		t.Fatalf("expected 2 renderers, got %d", len(renderers))
	}
	stop, renderers = ctx.TranspileUntil(0, never)
	if stop != len(tokens) || len(renderers) != 3 {
		t.Fatalf("expected full pass, got stop=%d renderers=%d", stop, len(renderers))
	}
}

func TestTranspilePassesTranslation(t *testing.T) {
	translation := Translation{"k": "v"}
	var seen Translation
	spy := transpilerFunc(func(offset int, ctx *Context) (TranspileResult, bool) {
		seen = ctx.Translation()
		return TranspileResult{}, false
	})
	Transpile([]Token{"x"}, []Transpiler{spy}, translation)
	if !reflect.DeepEqual(seen, translation) {
		t.Fatalf("expected translation to reach transpilers, got %v", seen)
	}
}

// transpilerFunc is a transpiler that never tokenizes and transpiles with fn.
type transpilerFunc func(offset int, ctx *Context) (TranspileResult, bool)

func (transpilerFunc) Tokenize(string, int) (TokenizeResult, bool) { return TokenizeResult{}, false }

func (f transpilerFunc) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	return f(offset, ctx)
}
