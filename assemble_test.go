package trmarkup

import (
	"testing"
)

func TestAssembleOrder(t *testing.T) {
	inline := fixedSubstitution("i", "I")
	provided := fixedSubstitution("p", "P")
	interp := NewStringInterpolationTranspiler(testFactory{}, nil, nil)
	literal := NewStringLiteralTranspiler(testFactory{})

	cases := []struct {
		name string
		req  AssembleRequest
		want []Transpiler
	}{
		{
			name: "merge",
			req:  AssembleRequest{Inline: []Transpiler{inline}, Provided: []Transpiler{provided}, Interpolation: interp, Literal: literal},
			want: []Transpiler{inline, provided, interp, literal},
		},
		{
			name: "exclusive",
			req:  AssembleRequest{Inline: []Transpiler{inline}, Provided: []Transpiler{provided}, Exclusive: true, Interpolation: interp, Literal: literal},
			want: []Transpiler{inline, interp, literal},
		},
		{
			name: "exclusive without inline",
			req:  AssembleRequest{Provided: []Transpiler{provided}, Exclusive: true, Literal: literal},
			want: []Transpiler{provided, literal},
		},
		{
			name: "nil entries",
			req:  AssembleRequest{Inline: []Transpiler{nil, inline}, Provided: []Transpiler{nil}},
			want: []Transpiler{inline},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Assemble(tc.req)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d transpilers, got %d", len(tc.want), len(got))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("transpiler %d: unexpected %T", i, got[i])
				}
			}
		})
	}
}

func TestAssembleInlineOverridesProvided(t *testing.T) {
	transpilers := Assemble(AssembleRequest{
		Inline:   []Transpiler{fixedSubstitution("*", "inline")},
		Provided: []Transpiler{fixedSubstitution("*", "provided")},
		Literal:  NewStringLiteralTranspiler(testFactory{}),
	})
	if got := renderString(t, "a*b", transpilers, nil); got != "ainlineb" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestAssembleMarkupBeatsInterpolation(t *testing.T) {
	f := testFactory{}
	transpilers := Assemble(AssembleRequest{
		Provided:      []Transpiler{NewBlockTranspiler("{{b}}", "{{/b}}", func(c []Renderer) Renderer { return f.ElementRenderer("b", c) })},
		Interpolation: NewStringInterpolationTranspiler(f, nil, nil),
		Literal:       NewStringLiteralTranspiler(f),
	})
	got := renderString(t, "{{b}}{{x}}{{/b}}", transpilers, Parameters{"x": "y", "b": "nope"})
	if got != "<b>y</b>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestDefaultTranspilers(t *testing.T) {
	transpilers := withLiteral(DefaultTranspilers(testFactory{})...)
	got := renderString(t, "[b]B[/b][i]I[/i][link:l]L[/link]", transpilers, Parameters{"l": ExternalLink{URL: "x://"}})
	if got != "<b>B</b><i>I</i><a href=x://>L</a>" {
		t.Fatalf("unexpected output %q", got)
	}
}
