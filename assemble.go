package trmarkup

// AssembleRequest describes the transpilers of a rendering site.
type AssembleRequest struct {
	// Inline transpilers are specific to one rendering site and take
	// precedence over everything else.
	Inline []Transpiler
	// Provided transpilers are shared by all rendering sites.
	Provided []Transpiler
	// Exclusive drops Provided when Inline is not empty.
	Exclusive bool
	// Interpolation expands interpolation expressions. It runs after all
	// markup transpilers so markup delimiters win over expressions.
	Interpolation Transpiler
	// Literal renders the remaining characters and always comes last.
	Literal Transpiler
}

// Assemble returns the ordered transpiler list for req. The order decides
// which transpiler claims a token when more than one could, in both the
// tokenize and the transpile phase, so it is part of the configuration.
// Nil entries are skipped.
func Assemble(req AssembleRequest) []Transpiler {
	out := make([]Transpiler, 0, len(req.Inline)+len(req.Provided)+2)
	out = appendTranspilers(out, req.Inline...)
	if !req.Exclusive || len(req.Inline) == 0 {
		out = appendTranspilers(out, req.Provided...)
	}
	out = appendTranspilers(out, req.Interpolation, req.Literal)
	return out
}

func appendTranspilers(out []Transpiler, ts ...Transpiler) []Transpiler {
	for _, t := range ts {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// DefaultTranspilers returns the bold, italic and link transpilers. With no
// link renderers given the link transpiler uses DefaultLinkRenderers.
func DefaultTranspilers(factory RendererFactory, linkRenderers ...LinkRenderer) []Transpiler {
	if len(linkRenderers) == 0 {
		linkRenderers = DefaultLinkRenderers()
	}
	return []Transpiler{
		NewBoldTextTranspiler(factory),
		NewItalicTextTranspiler(factory),
		NewLinkTranspiler(factory, linkRenderers...),
	}
}
