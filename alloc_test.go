package trmarkup

import (
	"testing"
)

func TestRenderFuncAllocations(t *testing.T) {
	transpilers := withLiteral(DefaultTranspilers(testFactory{})...)
	render := CreateRenderer("Click [link:l]here[/link] for [b]cookies[/b] :)", transpilers, nil)
	params := Parameters{"l": "https://example.com/"}
	target := &testTarget{}
	allocs := testing.AllocsPerRun(100, func() {
		render(target, params)
	})
	if allocs > 60 {
		t.Fatalf("too many allocations per render: got %.2f", allocs)
	}
}
