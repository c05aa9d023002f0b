// Package transpilers assembles the transpiler list shared by the CLI and the
// golden files.
package transpilers

import "pkt.systems/trmarkup"

// Options selects the optional transpilers.
type Options struct {
	Emoticons bool
	Colors    bool
	// Links adds a contextual link block [KEY]...[/KEY] per key, linked to
	// the KEY parameter. They take precedence over the other transpilers.
	Links []string
}

// Build returns the ordered transpiler list for opts: contextual links, the
// default bold, italic and link transpilers, the optional emoticon and
// colored text transpilers, interpolation and the literal fallback.
func Build(factory trmarkup.RendererFactory, opts Options) []trmarkup.Transpiler {
	links := trmarkup.NewContextualLinkTranspilerFactory(factory, trmarkup.DefaultLinkRenderers()...)
	var inline []trmarkup.Transpiler
	for _, key := range opts.Links {
		inline = append(inline, links.BlockTranspiler(key))
	}
	provided := trmarkup.DefaultTranspilers(factory)
	if opts.Emoticons {
		provided = append(provided, trmarkup.NewEmoticonTranspiler(factory))
	}
	if opts.Colors {
		provided = append(provided, trmarkup.NewColoredTextTranspiler(factory))
	}
	return trmarkup.Assemble(trmarkup.AssembleRequest{
		Inline:        inline,
		Provided:      provided,
		Interpolation: trmarkup.NewStringInterpolationTranspiler(factory, nil, nil),
		Literal:       trmarkup.NewStringLiteralTranspiler(factory),
	})
}
