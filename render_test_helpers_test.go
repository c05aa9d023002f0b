package trmarkup

import (
	"strings"
	"testing"
)

// testNode is the output node of testFactory.
type testNode struct {
	tag      string
	text     string
	attrs    []Attribute
	children []*testNode
}

func (n *testNode) textContent() string {
	if n.tag == "" {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.textContent())
	}
	return b.String()
}

func (n *testNode) String() string {
	if n.tag == "" {
		return n.text
	}
	var b strings.Builder
	b.WriteString("<" + n.tag)
	for _, a := range n.attrs {
		b.WriteString(" " + a.Key + "=" + a.Val)
	}
	b.WriteString(">")
	for _, c := range n.children {
		b.WriteString(c.String())
	}
	b.WriteString("</" + n.tag + ">")
	return b.String()
}

type testFactory struct{}

func (testFactory) TextRenderer(text string) Renderer {
	return func(Parameters) Node { return &testNode{text: text} }
}

func (testFactory) DynamicTextRenderer(text func(Parameters) string) Renderer {
	return func(params Parameters) Node { return &testNode{text: text(params)} }
}

func (testFactory) ElementRenderer(tag string, children []Renderer, decorators ...Decorator) Renderer {
	return func(params Parameters) Node {
		n := &testNode{tag: tag}
		for _, child := range children {
			n.children = append(n.children, child(params).(*testNode))
		}
		n.attrs = Decorate(params, decorators).All()
		return n
	}
}

type testTarget struct {
	nodes   []*testNode
	cleared int
}

func (t *testTarget) Clear() {
	t.nodes = nil
	t.cleared++
}

func (t *testTarget) Append(node Node) {
	t.nodes = append(t.nodes, node.(*testNode))
}

func (t *testTarget) String() string {
	var b strings.Builder
	for _, n := range t.nodes {
		b.WriteString(n.String())
	}
	return b.String()
}

func (t *testTarget) textContent() string {
	var b strings.Builder
	for _, n := range t.nodes {
		b.WriteString(n.textContent())
	}
	return b.String()
}

func renderString(t *testing.T, text string, transpilers []Transpiler, params Parameters) string {
	t.Helper()
	target := &testTarget{}
	if err := Render(RenderRequest{
		Text:        text,
		Transpilers: transpilers,
		Target:      target,
		Parameters:  params,
	}); err != nil {
		t.Fatalf("render: %v", err)
	}
	return target.String()
}

func withLiteral(transpilers ...Transpiler) []Transpiler {
	return append(transpilers, NewStringLiteralTranspiler(testFactory{}))
}

// fixedSubstitution substitutes token with the text out.
func fixedSubstitution(token, out string) *SubstitutionTranspiler {
	return NewSubstitutionTranspiler(token, func() Renderer {
		return testFactory{}.TextRenderer(out)
	})
}
