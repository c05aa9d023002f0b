// Package trmarkup renders translated strings containing lightweight markup
// into trees of output nodes.
//
// Rendering runs in two phases. The tokenizer scans the translation and asks
// each transpiler, in list order, to recognize a token at the current byte
// offset; the first match wins and characters nobody recognizes are skipped.
// The transpile phase then walks the tokens and asks each transpiler, again
// in list order, to turn the tokens at an offset into a renderer. Block
// constructs recurse through the shared Context to transpile their content.
//
// Core properties:
//   - Output-technology agnostic: renderers build nodes through a RendererFactory
//   - Transpiled once, rendered many times with different parameters
//   - Lenient: unknown tokens are skipped and unterminated blocks extend to the end
//   - Transpiler order is configuration; see Assemble
//
// Example:
//
//	factory := dom.NewFactory()
//	transpilers := trmarkup.Assemble(trmarkup.AssembleRequest{
//		Provided: trmarkup.DefaultTranspilers(factory),
//		Literal:  trmarkup.NewStringLiteralTranspiler(factory),
//	})
//	target := dom.NewTarget()
//	err := trmarkup.Render(trmarkup.RenderRequest{
//		Text:        "Click [link:home]here[/link] for [b]cookies[/b]!",
//		Transpilers: transpilers,
//		Target:      target,
//		Parameters:  trmarkup.Parameters{"home": "https://example.com/"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := target.HTML()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Translations are loaded by package catalog, rendered to HTML nodes by
// package dom and printed to terminals by package term.
package trmarkup
