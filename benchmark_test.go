package trmarkup

import (
	"strconv"
	"strings"
	"testing"
)

const benchmarkLine = "Hello {{ name }}, [b]welcome[/b] back! Read [link:docs]the [i]docs[/i][/link] :) "

func benchmarkTranspilers() []Transpiler {
	f := testFactory{}
	return Assemble(AssembleRequest{
		Provided:      append(DefaultTranspilers(f), NewEmoticonTranspiler(f)),
		Interpolation: NewStringInterpolationTranspiler(f, nil, nil),
		Literal:       NewStringLiteralTranspiler(f),
	})
}

func BenchmarkTokenize(b *testing.B) {
	transpilers := benchmarkTranspilers()
	for _, lines := range []int{1, 16, 256} {
		text := strings.Repeat(benchmarkLine, lines)
		b.Run(strconv.Itoa(lines), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				_ = Tokenize(text, transpilers)
			}
		})
	}
}

func BenchmarkCreateRenderer(b *testing.B) {
	transpilers := benchmarkTranspilers()
	text := strings.Repeat(benchmarkLine, 16)
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		_ = CreateRenderer(text, transpilers, nil)
	}
}

func BenchmarkRenderFunc(b *testing.B) {
	render := CreateRenderer(strings.Repeat(benchmarkLine, 16), benchmarkTranspilers(), nil)
	params := Parameters{"name": "Ada", "docs": "https://example.com/docs"}
	target := &testTarget{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		render(target, params)
	}
}

func BenchmarkCacheHit(b *testing.B) {
	cache := NewCache(benchmarkTranspilers())
	text := strings.Repeat(benchmarkLine, 16)
	cache.Renderer("en", text, nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.Renderer("en", text, nil)
	}
}
